package locale

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country pairs a code with its English display name for selection UIs.
type Country struct {
	Code CountryCode
	Name string
}

// CountryName returns the English display name for a country code.
// Unknown codes are returned as-is so the UI never shows an empty label.
func CountryName(code CountryCode) string {
	region, err := language.ParseRegion(string(code))
	if err != nil {
		return string(code)
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return string(code)
}

// SupportedCountries lists every country present in the mapping table with its
// English name, sorted alphabetically by name.
func SupportedCountries() []Country {
	countries := make([]Country, 0, len(countryLanguage))
	for code := range countryLanguage {
		countries = append(countries, Country{Code: code, Name: CountryName(code)})
	}
	coll := collate.New(language.English)
	sort.Slice(countries, func(i, j int) bool {
		return coll.CompareString(countries[i].Name, countries[j].Name) < 0
	})
	return countries
}
