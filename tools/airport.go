package tools

import (
	"context"
	"fmt"

	"wayfarer/errors"
	"wayfarer/services"
)

// AirportCodeTool resolves a city name to its primary IATA airport code.
type AirportCodeTool struct{}

func (AirportCodeTool) Name() string { return "get_airport_code" }

func (AirportCodeTool) Description() string {
	return "Get the IATA airport code for a city. Use this before searching flights when the user gives city names."
}

func (AirportCodeTool) Schema() Schema {
	return Schema{
		"city": {Type: TypeString, Description: "City name, e.g. Paris", Required: true},
	}
}

func (AirportCodeTool) Execute(_ context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	code, ok := services.AirportCode(city)
	if !ok {
		return "", errors.New("%s", fmt.Sprintf("no known airport code for %q", city))
	}
	return fmt.Sprintf("The airport code for %s is %s.", city, code), nil
}
