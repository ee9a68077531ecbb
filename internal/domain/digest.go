package domain

import (
	"fmt"
	"strings"
)

// Weather category glyphs, checked in priority order: Rain beats Snow beats
// Cloud; anything else gets the sun.
const (
	glyphRain  = "🌧️"
	glyphSnow  = "🌨️"
	glyphCloud = "☁️"
	glyphSun   = "☀️"
)

// maxDigestDays caps the digest at the provider's nominal forecast window.
const maxDigestDays = 5

// DailyDigest is the per-date aggregate of 3-hour forecast entries.
// Min/Max stay nil when no entry for the date carried a temperature.
type DailyDigest struct {
	DateLabel string // MM/DD in the digest timezone
	MinTempC  *float64
	MaxTempC  *float64
	Glyph     string
}

// SummarizeForecast groups entries by local calendar date, keeping at most
// the first five distinct dates in provider order (not sorted). Each date
// gets the min/max over its numeric temperatures and a glyph from the entry
// whose hour is closest to local noon.
func SummarizeForecast(entries []ForecastEntry) []DailyDigest {
	byDate := make(map[string][]ForecastEntry)
	var order []string
	for _, e := range entries {
		d := e.At.In(location).Format("01/02")
		if _, ok := byDate[d]; !ok {
			order = append(order, d)
		}
		byDate[d] = append(byDate[d], e)
	}
	if len(order) > maxDigestDays {
		order = order[:maxDigestDays]
	}

	digests := make([]DailyDigest, 0, len(order))
	for _, d := range order {
		day := byDate[d]
		dig := DailyDigest{DateLabel: d, Glyph: glyphFor(representative(day))}
		for _, e := range day {
			if e.TempC == nil {
				continue
			}
			if dig.MinTempC == nil || *e.TempC < *dig.MinTempC {
				v := *e.TempC
				dig.MinTempC = &v
			}
			if dig.MaxTempC == nil || *e.TempC > *dig.MaxTempC {
				v := *e.TempC
				dig.MaxTempC = &v
			}
		}
		digests = append(digests, dig)
	}
	return digests
}

// representative returns the category of the entry closest to local noon.
// A strict comparison keeps the earliest entry on ties.
func representative(day []ForecastEntry) string {
	best := ""
	bestDiff := 24
	for _, e := range day {
		diff := e.At.In(location).Hour() - 12
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = e.WeatherMain
		}
	}
	return best
}

func glyphFor(category string) string {
	switch {
	case strings.Contains(category, "Rain"):
		return glyphRain
	case strings.Contains(category, "Snow"):
		return glyphSnow
	case strings.Contains(category, "Cloud"):
		return glyphCloud
	}
	return glyphSun
}

// Line renders one digest row for the reply body. The temperature pair is
// omitted entirely when the date had no numeric temperatures.
func (d DailyDigest) Line() string {
	if d.MinTempC != nil && d.MaxTempC != nil {
		return fmt.Sprintf("・%s %s %.1f℃ / %.1f℃", d.DateLabel, d.Glyph, *d.MinTempC, *d.MaxTempC)
	}
	return fmt.Sprintf("・%s %s", d.DateLabel, d.Glyph)
}
