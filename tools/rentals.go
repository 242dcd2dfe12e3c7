package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
	"wayfarer/services"
)

// RentalSearchTool lists vehicle rental options in a city.
type RentalSearchTool struct{}

func (RentalSearchTool) Name() string { return "search_vacation_rentals" }

func (RentalSearchTool) Description() string {
	return "List vehicle rental options in a city, with daily prices in USD."
}

func (RentalSearchTool) Schema() Schema {
	return Schema{
		"city": {Type: TypeString, Description: "Pickup city", Required: true},
		"days": {Type: TypeInteger, Description: "Rental length in days", Required: false},
	}
}

func (RentalSearchTool) Execute(_ context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	days := intArg(args, "days", 1)
	if days < 1 {
		days = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rental options in %s for %d day(s):\n", city, days)
	for i, r := range services.RentalOptions(city) {
		fmt.Fprintf(&b, "%d. %s %s (%s), $%.0f/day, $%.0f total\n",
			i+1, r.Company, r.Model, r.Category, r.PricePerDay, r.PricePerDay*float64(days))
	}
	return b.String(), nil
}
