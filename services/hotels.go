package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfarer/errors"
	"wayfarer/logx"
)

// Hotel is one accommodation option returned by a search.
type Hotel struct {
	Name         string
	Rating       float64
	PricePerNight float64
	Area         string
}

// HotelService searches accommodation through the booking-com15
// RapidAPI endpoint. Without an API key it serves a mock catalogue.
type HotelService struct {
	apiKey string
	client *http.Client
}

// NewHotelService builds a hotel search client. An empty key enables
// mock mode.
func NewHotelService(apiKey string, timeout time.Duration) *HotelService {
	return &HotelService{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Search returns hotel options in the given city for the stay dates
// (YYYY-MM-DD), filtered to at most maxPrice per night when positive.
func (s *HotelService) Search(ctx context.Context, city, checkIn, checkOut string, maxPrice float64) ([]Hotel, error) {
	if s.apiKey == "" {
		logx.Debug().Str("city", city).Msg("hotel search in mock mode")
		return filterHotels(mockHotels(city), maxPrice), nil
	}

	destID, err := s.lookupDestination(ctx, city)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("dest_id", destID)
	q.Set("search_type", "CITY")
	q.Set("arrival_date", checkIn)
	q.Set("departure_date", checkOut)
	q.Set("currency_code", "USD")

	var payload struct {
		Data struct {
			Hotels []struct {
				Property struct {
					Name         string  `json:"name"`
					ReviewScore  float64 `json:"reviewScore"`
					PriceBreakdown struct {
						GrossPrice struct {
							Value float64 `json:"value"`
						} `json:"grossPrice"`
					} `json:"priceBreakdown"`
					WishlistName string `json:"wishlistName"`
				} `json:"property"`
			} `json:"hotels"`
		} `json:"data"`
	}
	if err := s.getJSON(ctx, "/api/v1/hotels/searchHotels", q, &payload); err != nil {
		return nil, errors.Wrapf(err, "error searching hotels in %s", city)
	}

	hotels := make([]Hotel, 0, len(payload.Data.Hotels))
	for _, h := range payload.Data.Hotels {
		hotels = append(hotels, Hotel{
			Name:          h.Property.Name,
			Rating:        h.Property.ReviewScore / 2, // 10-point scale to 5
			PricePerNight: h.Property.PriceBreakdown.GrossPrice.Value,
			Area:          h.Property.WishlistName,
		})
		if len(hotels) == 8 {
			break
		}
	}
	hotels = filterHotels(hotels, maxPrice)
	if len(hotels) == 0 {
		return nil, errors.New("%s", fmt.Sprintf("no hotels found in %s for those dates", city))
	}
	return hotels, nil
}

func (s *HotelService) lookupDestination(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("query", city)
	var payload struct {
		Data []struct {
			DestID   string `json:"dest_id"`
			DestType string `json:"dest_type"`
		} `json:"data"`
	}
	if err := s.getJSON(ctx, "/api/v1/hotels/searchDestination", q, &payload); err != nil {
		return "", errors.Wrapf(err, "error resolving destination %s", city)
	}
	for _, d := range payload.Data {
		if d.DestType == "city" {
			return d.DestID, nil
		}
	}
	if len(payload.Data) > 0 {
		return payload.Data[0].DestID, nil
	}
	return "", errors.New("%s", fmt.Sprintf("unknown destination %q", city))
}

func (s *HotelService) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://booking-com15.p.rapidapi.com"+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", s.apiKey)
	req.Header.Set("x-rapidapi-host", "booking-com15.p.rapidapi.com")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func filterHotels(hotels []Hotel, maxPrice float64) []Hotel {
	if maxPrice <= 0 {
		return hotels
	}
	out := hotels[:0:0]
	for _, h := range hotels {
		if h.PricePerNight <= maxPrice {
			out = append(out, h)
		}
	}
	return out
}

func mockHotels(city string) []Hotel {
	base := 70.0 + float64((len(city)*11)%60)
	return []Hotel{
		{Name: "Grand Central Hotel", Rating: 4.6, PricePerNight: base + 110, Area: "city centre"},
		{Name: "Riverside Boutique", Rating: 4.3, PricePerNight: base + 55, Area: "old town"},
		{Name: "Garden Court Inn", Rating: 4.0, PricePerNight: base + 20, Area: "museum quarter"},
		{Name: "Backpacker Lodge", Rating: 3.7, PricePerNight: base, Area: "station district"},
	}
}
