// Package weathercode maps WMO weather interpretation codes, as returned by
// Open-Meteo, to display text and icons. The tables are read-only.
package weathercode

import "sort"

// Unknown is the description for any code outside the table
const Unknown = "Unknown"

// Icon identifies an icon asset and its terminal glyph
type Icon struct {
	Asset string
	Glyph string
}

// DefaultIcon is returned for codes without an icon
var DefaultIcon = Icon{Asset: "unknown", Glyph: "?"}

var descriptions = map[int]string{
	0:  "Clear Sky",
	1:  "Mostly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Dense Fog",
	51: "Light Drizzle",
	53: "Moderate Drizzle",
	55: "Heavy Drizzle",
	56: "Light Freezing Drizzle",
	57: "Heavy Freezing Drizzle",
	61: "Slight Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	66: "Light Freezing Rain",
	67: "Heavy Freezing Rain",
	71: "Slight Snowfall",
	73: "Moderate Snowfall",
	75: "Heavy Snowfall",
	77: "Snow Grains",
	80: "Slight Rain Showers",
	81: "Moderate Rain Showers",
	82: "Violent Rain Showers",
	85: "Slight Snow Showers",
	86: "Heavy Snow Showers",
	95: "Thunderstorm: Slight or Moderate",
	96: "Thunderstorm with Slight Hail",
	99: "Thunderstorm with Heavy Hail",
}

var icons = map[int]Icon{
	0:  {"clear-day", "☀️"},
	1:  {"mostly-clear-day", "🌤️"},
	2:  {"partly-cloudy-day", "⛅"},
	3:  {"overcast", "☁️"},
	45: {"fog", "🌫️"},
	48: {"fog", "🌫️"},
	51: {"drizzle", "🌦️"},
	53: {"drizzle", "🌦️"},
	55: {"drizzle", "🌧️"},
	56: {"freezing-drizzle", "🌧️"},
	57: {"freezing-drizzle", "🌧️"},
	61: {"rain", "🌧️"},
	63: {"rain", "🌧️"},
	65: {"rain-heavy", "🌧️"},
	66: {"freezing-rain", "🌧️"},
	67: {"freezing-rain", "🌧️"},
	71: {"snow", "🌨️"},
	73: {"snow", "🌨️"},
	75: {"snow-heavy", "❄️"},
	77: {"snow-grains", "🌨️"},
	80: {"showers", "🌦️"},
	81: {"showers", "🌦️"},
	82: {"showers-heavy", "⛈️"},
	85: {"snow-showers", "🌨️"},
	86: {"snow-showers", "🌨️"},
	95: {"thunderstorm", "⛈️"},
	96: {"thunderstorm-hail", "⛈️"},
	99: {"thunderstorm-hail", "⛈️"},
}

// night replaces the sun-based icons after dark
var night = map[int]Icon{
	0: {"clear-night", "🌙"},
	1: {"mostly-clear-night", "🌙"},
	2: {"partly-cloudy-night", "☁️"},
}

// Description returns the text for code, or Unknown
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return Unknown
}

// IconFor returns the daytime icon for code, or DefaultIcon
func IconFor(code int) Icon {
	if i, ok := icons[code]; ok {
		return i
	}
	return DefaultIcon
}

// IconForTime is IconFor with night variants for clear and partly cloudy skies
func IconForTime(code int, isDay bool) Icon {
	if !isDay {
		if i, ok := night[code]; ok {
			return i
		}
	}
	return IconFor(code)
}

// Known reports whether code is in the table
func Known(code int) bool {
	_, ok := descriptions[code]
	return ok
}

// Codes returns every known code in ascending order
func Codes() []int {
	out := make([]int, 0, len(descriptions))
	for c := range descriptions {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// DescriptionPtr handles a missing code from a nullable series
func DescriptionPtr(code *int) string {
	if code == nil {
		return Unknown
	}
	return Description(*code)
}

// IconPtr handles a missing code from a nullable series
func IconPtr(code *int) Icon {
	if code == nil {
		return DefaultIcon
	}
	return IconFor(*code)
}
