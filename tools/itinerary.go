package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
	"wayfarer/services"
)

// ItineraryTool composes a day-by-day visit plan from attraction and
// restaurant lookups.
type ItineraryTool struct {
	Places *services.PlacesService
}

func (ItineraryTool) Name() string { return "create_visit_itinerary" }

func (ItineraryTool) Description() string {
	return "Create a day-by-day itinerary for a city visit, mixing attractions and restaurants."
}

func (ItineraryTool) Schema() Schema {
	return Schema{
		"city":      {Type: TypeString, Description: "Destination city", Required: true},
		"days":      {Type: TypeInteger, Description: "Number of days, 1-7", Required: true},
		"interests": {Type: TypeString, Description: "Comma-separated interests", Required: false},
	}
}

func (t ItineraryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	days := intArg(args, "days", 3)
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}
	interests := strings.Join(splitList(stringArg(args, "interests", "")), " and ")

	attractions, err := t.Places.SearchAttractions(ctx, city, interests)
	if err != nil {
		return "", err
	}
	restaurants, err := t.Places.SearchRestaurants(ctx, city, "")
	if err != nil {
		return "", err
	}
	if len(attractions) == 0 {
		return "", errors.New("%s", fmt.Sprintf("nothing to plan in %s", city))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggested %d-day itinerary for %s:\n", days, city)
	for day := 0; day < days; day++ {
		fmt.Fprintf(&b, "Day %d:\n", day+1)
		morning := attractions[(2*day)%len(attractions)]
		afternoon := attractions[(2*day+1)%len(attractions)]
		fmt.Fprintf(&b, "  Morning: %s\n", morning.Name)
		fmt.Fprintf(&b, "  Afternoon: %s\n", afternoon.Name)
		if len(restaurants) > 0 {
			fmt.Fprintf(&b, "  Dinner: %s\n", restaurants[day%len(restaurants)].Name)
		}
	}
	return b.String(), nil
}
