package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
	"wayfarer/services"
)

// AttractionsTool finds points of interest in a city.
type AttractionsTool struct {
	Places *services.PlacesService
}

func (AttractionsTool) Name() string { return "find_nearby_attractions" }

func (AttractionsTool) Description() string {
	return "Find top attractions and points of interest in a city, optionally narrowed by an interest such as museums or architecture."
}

func (AttractionsTool) Schema() Schema {
	return Schema{
		"city":     {Type: TypeString, Description: "Destination city", Required: true},
		"interest": {Type: TypeString, Description: "Optional interest, e.g. museums, parks", Required: false},
	}
}

func (t AttractionsTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	interest := stringArg(args, "interest", "")

	places, err := t.Places.SearchAttractions(ctx, city, interest)
	if err != nil {
		return "", err
	}
	return formatPlaces(fmt.Sprintf("Attractions in %s:", city), places), nil
}

// CulturalActivitiesTool finds cultural venues matching preferences.
type CulturalActivitiesTool struct {
	Places *services.PlacesService
}

func (CulturalActivitiesTool) Name() string { return "find_cultural_activities" }

func (CulturalActivitiesTool) Description() string {
	return "Find cultural activities (museums, galleries, theatres, historic sites) in a city, filtered by the traveller's preferences."
}

func (CulturalActivitiesTool) Schema() Schema {
	return Schema{
		"city":        {Type: TypeString, Description: "Destination city", Required: true},
		"preferences": {Type: TypeString, Description: "Comma-separated preferences, e.g. history, art, music", Required: false},
	}
}

func (t CulturalActivitiesTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	prefs := splitList(stringArg(args, "preferences", ""))

	interest := "cultural activities"
	if len(prefs) > 0 {
		interest = strings.Join(prefs, " and ") + " cultural activities"
	}
	places, err := t.Places.SearchAttractions(ctx, city, interest)
	if err != nil {
		return "", err
	}
	return formatPlaces(fmt.Sprintf("Cultural activities in %s:", city), places), nil
}

// RestaurantsTool finds restaurant options in a city.
type RestaurantsTool struct {
	Places *services.PlacesService
}

func (RestaurantsTool) Name() string { return "recommend_restaurants" }

func (RestaurantsTool) Description() string {
	return "Recommend restaurants in a city, optionally narrowed by cuisine."
}

func (RestaurantsTool) Schema() Schema {
	return Schema{
		"city":    {Type: TypeString, Description: "Destination city", Required: true},
		"cuisine": {Type: TypeString, Description: "Optional cuisine, e.g. italian, seafood", Required: false},
	}
}

func (t RestaurantsTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city := stringArg(args, "city", "")
	if city == "" {
		return "", errors.New("city is required")
	}
	cuisine := stringArg(args, "cuisine", "")

	places, err := t.Places.SearchRestaurants(ctx, city, cuisine)
	if err != nil {
		return "", err
	}
	return formatPlaces(fmt.Sprintf("Restaurants in %s:", city), places), nil
}

func formatPlaces(header string, places []services.Place) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, p := range places {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Rating > 0 {
			fmt.Fprintf(&b, " (%.1f)", p.Rating)
		}
		if p.Address != "" {
			fmt.Fprintf(&b, ", %s", p.Address)
		}
		b.WriteString("\n")
	}
	return b.String()
}
