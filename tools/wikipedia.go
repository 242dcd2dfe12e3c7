package tools

import (
	"context"

	"wayfarer/errors"
	"wayfarer/services"
)

// DestinationContextTool fetches encyclopedia background on a place.
type DestinationContextTool struct {
	Wikipedia *services.WikipediaService
}

func (DestinationContextTool) Name() string { return "get_destination_context" }

func (DestinationContextTool) Description() string {
	return "Get encyclopedia background about a destination: history, geography, what it is known for."
}

func (DestinationContextTool) Schema() Schema {
	return Schema{
		"destination": {Type: TypeString, Description: "Place to look up, e.g. Kyoto", Required: true},
	}
}

func (t DestinationContextTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	dest := stringArg(args, "destination", "")
	if dest == "" {
		return "", errors.New("destination is required")
	}
	return t.Wikipedia.Summary(ctx, dest)
}
