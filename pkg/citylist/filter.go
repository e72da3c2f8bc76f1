package citylist

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Filter returns the records whose country or city contains query, ignoring
// case. Order is preserved and an empty query returns records as is.
func Filter(records []CityRecord, query string) []CityRecord {
	if query == "" {
		return records
	}
	m := ahocorasick.NewStringMatcher([]string{strings.ToLower(query)})
	out := make([]CityRecord, 0)
	for _, r := range records {
		if matches(m, r) {
			out = append(out, r)
		}
	}
	return out
}

func matches(m *ahocorasick.Matcher, r CityRecord) bool {
	return m.Contains([]byte(strings.ToLower(r.Country))) || m.Contains([]byte(strings.ToLower(r.City)))
}
