package services

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"wayfarer/errors"
	"wayfarer/logx"
)

// Place is one point of interest returned by a search.
type Place struct {
	Name    string
	Address string
	Rating  float64
}

// PlacesService looks up attractions and restaurants through the Google
// Maps Places API. Without an API key it serves mock suggestions.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService builds a places client. An empty key enables mock
// mode.
func NewPlacesService(apiKey string, timeout time.Duration) (*PlacesService, error) {
	if apiKey == "" {
		return &PlacesService{}, nil
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(httpClientWithTimeout(timeout)))
	if err != nil {
		return nil, errors.Wrapf(err, "error creating maps client")
	}
	return &PlacesService{client: c}, nil
}

// SearchAttractions returns top points of interest in a city, optionally
// narrowed by an interest such as "museums" or "street food".
func (s *PlacesService) SearchAttractions(ctx context.Context, city, interest string) ([]Place, error) {
	query := "top attractions in " + city
	if interest != "" {
		query = interest + " in " + city
	}
	return s.textSearch(ctx, query, mockAttractions(city))
}

// SearchRestaurants returns restaurant options in a city, optionally
// narrowed by a cuisine.
func (s *PlacesService) SearchRestaurants(ctx context.Context, city, cuisine string) ([]Place, error) {
	query := "best restaurants in " + city
	if cuisine != "" {
		query = fmt.Sprintf("best %s restaurants in %s", cuisine, city)
	}
	return s.textSearch(ctx, query, mockRestaurants(city))
}

func (s *PlacesService) textSearch(ctx context.Context, query string, mock []Place) ([]Place, error) {
	if s.client == nil {
		logx.Debug().Str("query", query).Msg("places search in mock mode")
		return mock, nil
	}
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, errors.Wrapf(err, "error searching places for %q", query)
	}
	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, Place{
			Name:    r.Name,
			Address: r.FormattedAddress,
			Rating:  float64(r.Rating),
		})
		if len(places) == 6 {
			break
		}
	}
	if len(places) == 0 {
		return nil, errors.New("%s", fmt.Sprintf("no places found for %q", query))
	}
	return places, nil
}

func mockAttractions(city string) []Place {
	return []Place{
		{Name: "Historic Old Town", Address: city + " centre", Rating: 4.7},
		{Name: "National Museum", Address: "Museum Quarter, " + city, Rating: 4.6},
		{Name: "Riverside Promenade", Address: city + " waterfront", Rating: 4.5},
		{Name: "Central Market Hall", Address: "Market Square, " + city, Rating: 4.4},
		{Name: "Botanical Gardens", Address: "Garden District, " + city, Rating: 4.3},
	}
}

func mockRestaurants(city string) []Place {
	return []Place{
		{Name: "La Table du Marché", Address: "Market Square, " + city, Rating: 4.6},
		{Name: "Osteria del Ponte", Address: "Old Town, " + city, Rating: 4.5},
		{Name: "The Spice Route", Address: "Station District, " + city, Rating: 4.3},
		{Name: "Green Fork", Address: "Museum Quarter, " + city, Rating: 4.2},
	}
}
