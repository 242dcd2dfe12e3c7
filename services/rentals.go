package services

// Rental is one vehicle rental option.
type Rental struct {
	Company     string
	Category    string
	Model       string
	PricePerDay float64
}

// RentalOptions returns vehicle rental options for a city. The
// catalogue is static; no live rental API is wired in yet.
func RentalOptions(city string) []Rental {
	base := 25.0 + float64((len(city)*9)%20)
	return []Rental{
		{Company: "Hertz", Category: "economy", Model: "Fiat 500", PricePerDay: base},
		{Company: "Europcar", Category: "compact", Model: "VW Golf", PricePerDay: base + 14},
		{Company: "Sixt", Category: "SUV", Model: "Nissan Qashqai", PricePerDay: base + 38},
		{Company: "Avis", Category: "van", Model: "Renault Trafic", PricePerDay: base + 55},
	}
}
