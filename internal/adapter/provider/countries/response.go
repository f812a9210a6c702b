package countries

import (
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// apiCountry is the subset of a REST Countries v3.1 record that is stored.
type apiCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string               `json:"capital"`
	Currencies map[string]apiCurrency `json:"currencies"`
	Languages  map[string]string      `json:"languages"`
	Region     string                 `json:"region"`
	Subregion  string                 `json:"subregion"`
	Population int64                  `json:"population"`
	Timezones  []string               `json:"timezones"`
	Flags      struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
	Maps struct {
		GoogleMaps string `json:"googleMaps"`
	} `json:"maps"`
	StartOfWeek string `json:"startOfWeek"`
}

type apiCurrency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// toDestination projects a country record onto the destination snapshot.
// Map-valued fields are ordered by key so the output is stable.
func toDestination(c apiCountry) domain.Destination {
	d := domain.Destination{
		Country:      c.Name.Common,
		OfficialName: c.Name.Official,
		Currency:     formatCurrencies(c.Currencies),
		Languages:    sortedValues(c.Languages),
		Timezones:    c.Timezones,
		Region:       c.Region,
		Subregion:    c.Subregion,
		Population:   c.Population,
		Flag:         c.Flags.SVG,
		GoogleMaps:   c.Maps.GoogleMaps,
		StartOfWeek:  c.StartOfWeek,
	}
	if len(c.Capital) > 0 {
		d.CapitalCity = c.Capital[0]
	}
	if d.Flag == "" {
		d.Flag = c.Flags.PNG
	}
	return d
}

// formatCurrencies renders "Euro (€), Swiss franc (Fr.)". A missing symbol
// falls back to the currency code.
func formatCurrencies(m map[string]apiCurrency) string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := m[code]
		symbol := cur.Symbol
		if symbol == "" {
			symbol = code
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", cur.Name, symbol))
	}
	return strings.Join(parts, ", ")
}

func sortedValues(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
