package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
	"wayfarer/services"
)

// HotelSearchTool finds accommodation in a city.
type HotelSearchTool struct {
	Hotels *services.HotelService
}

func (HotelSearchTool) Name() string { return "search_hotels" }

func (HotelSearchTool) Description() string {
	return "Search hotels in a city for a stay, optionally capped at a nightly budget in USD."
}

func (HotelSearchTool) Schema() Schema {
	return Schema{
		"city":      {Type: TypeString, Description: "Destination city", Required: true},
		"check_in":  {Type: TypeString, Description: "Check-in date, YYYY-MM-DD", Required: true},
		"check_out": {Type: TypeString, Description: "Check-out date, YYYY-MM-DD", Required: true},
		"max_price": {Type: TypeNumber, Description: "Maximum nightly price in USD, 0 for no cap", Required: false},
	}
}

func (t HotelSearchTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	checkIn := stringArg(args, "check_in", "")
	checkOut := stringArg(args, "check_out", "")
	maxPrice := floatArg(args, "max_price", 0)

	hotels, err := t.Hotels.Search(ctx, city, checkIn, checkOut, maxPrice)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hotels in %s (%s to %s):\n", city, checkIn, checkOut)
	for i, h := range hotels {
		fmt.Fprintf(&b, "%d. %s, %.1f stars, $%.0f/night", i+1, h.Name, h.Rating, h.PricePerNight)
		if h.Area != "" {
			fmt.Fprintf(&b, ", %s", h.Area)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
