package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
	"wayfarer/services"
)

// FlightSearchTool finds flight options between two airports.
type FlightSearchTool struct {
	Flights *services.FlightService
}

func (FlightSearchTool) Name() string { return "search_flights" }

func (FlightSearchTool) Description() string {
	return "Search flights between two airports on a date. Origin and destination are IATA codes; use get_airport_code first for city names."
}

func (FlightSearchTool) Schema() Schema {
	return Schema{
		"origin":         {Type: TypeString, Description: "Departure airport IATA code, e.g. CDG", Required: true},
		"destination":    {Type: TypeString, Description: "Arrival airport IATA code, e.g. FCO", Required: true},
		"departure_date": {Type: TypeString, Description: "Departure date, YYYY-MM-DD", Required: true},
	}
}

func (t FlightSearchTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	origin := strings.ToUpper(stringArg(args, "origin", ""))
	destination := strings.ToUpper(stringArg(args, "destination", ""))
	date := stringArg(args, "departure_date", "")
	if origin == "" || destination == "" {
		return "", errors.New("origin and destination are required")
	}

	flights, err := t.Flights.Search(ctx, origin, destination, date)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Flights from %s to %s on %s:\n", origin, destination, date)
	for i, f := range flights {
		stops := "non-stop"
		if f.Stops == 1 {
			stops = "1 stop"
		} else if f.Stops > 1 {
			stops = fmt.Sprintf("%d stops", f.Stops)
		}
		fmt.Fprintf(&b, "%d. %s, departs %s arrives %s (%s, %s), $%.0f\n",
			i+1, f.Airline, f.Departure, f.Arrival, f.Duration, stops, f.PriceUSD)
	}
	return b.String(), nil
}
