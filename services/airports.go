// Package services provides the external data lookups the travel tools
// are built on. Each client that talks to a paid API degrades to a
// deterministic mock catalogue when its key is absent, so the agent
// stays usable offline.
package services

import "strings"

// airportCodes maps lowercase city names to their primary IATA code.
var airportCodes = map[string]string{
	"paris":          "CDG",
	"london":         "LHR",
	"new york":       "JFK",
	"tokyo":          "NRT",
	"rome":           "FCO",
	"barcelona":      "BCN",
	"madrid":         "MAD",
	"amsterdam":      "AMS",
	"berlin":         "BER",
	"lisbon":         "LIS",
	"dubai":          "DXB",
	"singapore":      "SIN",
	"bangkok":        "BKK",
	"sydney":         "SYD",
	"los angeles":    "LAX",
	"san francisco":  "SFO",
	"miami":          "MIA",
	"chicago":        "ORD",
	"toronto":        "YYZ",
	"montreal":       "YUL",
	"mexico city":    "MEX",
	"rio de janeiro": "GIG",
	"buenos aires":   "EZE",
	"cairo":          "CAI",
	"marrakech":      "RAK",
	"casablanca":     "CMN",
	"istanbul":       "IST",
	"athens":         "ATH",
	"vienna":         "VIE",
	"prague":         "PRG",
	"budapest":       "BUD",
	"dublin":         "DUB",
	"copenhagen":     "CPH",
	"stockholm":      "ARN",
	"oslo":           "OSL",
	"helsinki":       "HEL",
	"zurich":         "ZRH",
	"geneva":         "GVA",
	"brussels":       "BRU",
	"munich":         "MUC",
	"frankfurt":      "FRA",
	"milan":          "MXP",
	"venice":         "VCE",
	"florence":       "FLR",
	"naples":         "NAP",
	"seoul":          "ICN",
	"beijing":        "PEK",
	"shanghai":       "PVG",
	"hong kong":      "HKG",
	"delhi":          "DEL",
	"mumbai":         "BOM",
	"bali":           "DPS",
	"hanoi":          "HAN",
	"marseille":      "MRS",
	"lyon":           "LYS",
	"nice":           "NCE",
	"bordeaux":       "BOD",
	"toulouse":       "TLS",
	"nantes":         "NTE",
	"strasbourg":     "SXB",
}

// AirportCode resolves a city name to its primary IATA code. Input that
// is already a three-letter code is returned uppercased as-is.
func AirportCode(city string) (string, bool) {
	trimmed := strings.TrimSpace(city)
	if isIATA(trimmed) {
		return strings.ToUpper(trimmed), true
	}
	code, ok := airportCodes[strings.ToLower(trimmed)]
	return code, ok
}

func isIATA(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}
