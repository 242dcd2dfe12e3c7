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

// Flight is one flight option returned by a search.
type Flight struct {
	Airline   string
	Departure string
	Arrival   string
	Duration  string
	Stops     int
	PriceUSD  float64
}

// FlightService searches flights through the SerpAPI Google Flights
// engine. Without an API key it serves a deterministic mock schedule.
type FlightService struct {
	apiKey string
	client *http.Client
}

// NewFlightService builds a flight search client. An empty key enables
// mock mode.
func NewFlightService(apiKey string, timeout time.Duration) *FlightService {
	return &FlightService{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Search returns flight options from origin to destination on the given
// date (YYYY-MM-DD). Origin and destination are IATA codes.
func (s *FlightService) Search(ctx context.Context, origin, destination, date string) ([]Flight, error) {
	if s.apiKey == "" {
		logx.Debug().Str("origin", origin).Str("destination", destination).Msg("flight search in mock mode")
		return mockFlights(origin, destination), nil
	}

	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("departure_id", origin)
	q.Set("arrival_id", destination)
	q.Set("outbound_date", date)
	q.Set("type", "2")
	q.Set("currency", "USD")
	q.Set("api_key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://serpapi.com/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error building flight search request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error searching flights %s-%s", origin, destination)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("%s", fmt.Sprintf("flight search returned status %d", resp.StatusCode))
	}

	var payload struct {
		BestFlights []serpFlightGroup `json:"best_flights"`
		OtherFlights []serpFlightGroup `json:"other_flights"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "error decoding flight search response")
	}

	groups := append(payload.BestFlights, payload.OtherFlights...)
	flights := make([]Flight, 0, len(groups))
	for _, g := range groups {
		if len(g.Flights) == 0 {
			continue
		}
		first := g.Flights[0]
		last := g.Flights[len(g.Flights)-1]
		flights = append(flights, Flight{
			Airline:   first.Airline,
			Departure: first.DepartureAirport.Time,
			Arrival:   last.ArrivalAirport.Time,
			Duration:  fmt.Sprintf("%dh%02dm", g.TotalDuration/60, g.TotalDuration%60),
			Stops:     len(g.Flights) - 1,
			PriceUSD:  float64(g.Price),
		})
		if len(flights) == 5 {
			break
		}
	}
	if len(flights) == 0 {
		return nil, errors.New("%s", fmt.Sprintf("no flights found from %s to %s on %s", origin, destination, date))
	}
	return flights, nil
}

type serpFlightGroup struct {
	Flights []struct {
		Airline          string `json:"airline"`
		DepartureAirport struct {
			Time string `json:"time"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Time string `json:"time"`
		} `json:"arrival_airport"`
	} `json:"flights"`
	TotalDuration int `json:"total_duration"`
	Price         int `json:"price"`
}

// mockFlights produces a small stable schedule so demos and tests do
// not depend on the network. Prices vary with the route so totals stay
// plausible.
func mockFlights(origin, destination string) []Flight {
	base := 180.0 + float64((len(origin)*7+len(destination)*13)%120)
	return []Flight{
		{Airline: "Air France", Departure: "08:15", Arrival: "14:40", Duration: "6h25m", Stops: 0, PriceUSD: base + 140},
		{Airline: "Lufthansa", Departure: "10:05", Arrival: "17:55", Duration: "7h50m", Stops: 1, PriceUSD: base + 60},
		{Airline: "Turkish Airlines", Departure: "21:30", Arrival: "07:45", Duration: "10h15m", Stops: 1, PriceUSD: base},
	}
}
