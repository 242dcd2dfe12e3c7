package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
)

// TotalCostTool sums a trip budget from its components. Pure
// computation, no external calls.
type TotalCostTool struct{}

func (TotalCostTool) Name() string { return "calculate_total_cost" }

func (TotalCostTool) Description() string {
	return "Calculate the total trip cost in USD from flight price, nightly hotel price, nights, travellers and a daily spending allowance."
}

func (TotalCostTool) Schema() Schema {
	return Schema{
		"flight_price":    {Type: TypeNumber, Description: "Round-trip flight price per traveller in USD", Required: true},
		"hotel_per_night": {Type: TypeNumber, Description: "Hotel price per night in USD", Required: true},
		"nights":          {Type: TypeInteger, Description: "Number of nights", Required: true},
		"travelers":       {Type: TypeInteger, Description: "Number of travellers, default 1", Required: false},
		"daily_budget":    {Type: TypeNumber, Description: "Daily food and activity allowance per traveller in USD", Required: false},
	}
}

func (TotalCostTool) Execute(_ context.Context, args map[string]interface{}) (string, error) {
	flight := floatArg(args, "flight_price", -1)
	hotel := floatArg(args, "hotel_per_night", -1)
	nights := intArg(args, "nights", -1)
	if flight < 0 || hotel < 0 || nights < 0 {
		return "", errors.New("flight_price, hotel_per_night and nights are required and must be non-negative")
	}
	travelers := intArg(args, "travelers", 1)
	if travelers < 1 {
		travelers = 1
	}
	daily := floatArg(args, "daily_budget", 0)

	flightTotal := flight * float64(travelers)
	hotelTotal := hotel * float64(nights)
	dailyTotal := daily * float64(nights) * float64(travelers)
	total := flightTotal + hotelTotal + dailyTotal

	var b strings.Builder
	fmt.Fprintf(&b, "Trip cost for %d traveller(s), %d night(s):\n", travelers, nights)
	fmt.Fprintf(&b, "Flights: $%.2f\n", flightTotal)
	fmt.Fprintf(&b, "Hotel: $%.2f\n", hotelTotal)
	if dailyTotal > 0 {
		fmt.Fprintf(&b, "Daily spending: $%.2f\n", dailyTotal)
	}
	fmt.Fprintf(&b, "Total: $%.2f", total)
	return b.String(), nil
}
