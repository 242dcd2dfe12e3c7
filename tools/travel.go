package tools

import "wayfarer/services"

// TravelRegistry wires the full travel tool set over the given service
// clients, in the order they are presented to the model.
func TravelRegistry(
	flights *services.FlightService,
	hotels *services.HotelService,
	places *services.PlacesService,
	wikipedia *services.WikipediaService,
) *Registry {
	return NewRegistry(
		AirportCodeTool{},
		FlightSearchTool{Flights: flights},
		HotelSearchTool{Hotels: hotels},
		RentalSearchTool{},
		AttractionsTool{Places: places},
		CulturalActivitiesTool{Places: places},
		RestaurantsTool{Places: places},
		ItineraryTool{Places: places},
		DestinationContextTool{Wikipedia: wikipedia},
		TotalCostTool{},
		PackageRecommendationTool{},
	)
}
