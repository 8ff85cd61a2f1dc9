package catalog

import "strings"

// countryKeywords maps each supported country to the free-text keywords that
// signal intent for it. Detection is a first-match scan in this fixed order,
// not a ranked classifier.
var countryOrder = []string{"Thailand", "Japan", "South Korea", "Singapore", "Malaysia"}

var countryKeywords = map[string][]string{
	"Thailand":    {"bangkok", "thailand", "thai", "phuket", "chiang mai", "krabi", "pattaya"},
	"Japan":       {"tokyo", "japan", "japanese", "kyoto", "osaka", "hokkaido", "okinawa"},
	"South Korea": {"seoul", "korea", "korean", "busan", "jeju", "incheon"},
	"Singapore":   {"singapore", "sentosa", "marina bay"},
	"Malaysia":    {"malaysia", "kuala lumpur", "penang", "langkawi", "malacca", "kota kinabalu"},
}

// DetectCountry infers a target country from free text. Returns "" when no
// keyword matches.
func DetectCountry(text string) string {
	lower := strings.ToLower(text)
	for _, country := range countryOrder {
		for _, kw := range countryKeywords[country] {
			if strings.Contains(lower, kw) {
				return country
			}
		}
	}
	return ""
}

// SupportedCountries returns the fixed country iteration order.
func SupportedCountries() []string {
	out := make([]string, len(countryOrder))
	copy(out, countryOrder)
	return out
}
