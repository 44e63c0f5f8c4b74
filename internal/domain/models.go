package domain

import (
	"strings"
	"time"
)

// LocationCandidate is one geocoding result
type LocationCandidate struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	Admin1    string
	Admin2    string
	Country   string
}

// Label returns the row text shown in the candidate list
func (c LocationCandidate) Label() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Name, c.Admin1, c.Admin2, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// SelectedLocation is what the selector hands to the forecast viewer
type SelectedLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
	Admin1    string // optional, display only
	Admin2    string
	Country   string
}

// FromCandidate builds the selection handoff for a candidate
func FromCandidate(c LocationCandidate) SelectedLocation {
	return SelectedLocation{
		Name:      c.Name,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Admin1:    c.Admin1,
		Admin2:    c.Admin2,
		Country:   c.Country,
	}
}

// Subtitle returns the admin/country line for the details header
func (l SelectedLocation) Subtitle() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Admin1, l.Admin2, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ForecastSnapshot is one complete forecast payload as of one fetch
type ForecastSnapshot struct {
	FetchedAt time.Time
	Timezone  string
	Current   CurrentConditions
	Hourly    HourlySeries
	Daily     DailySeries
}

// CurrentConditions holds the "current" section
type CurrentConditions struct {
	Time                string
	Temperature         *float64
	ApparentTemperature *float64
	IsDay               bool
	WeatherCode         *int
}

// HourlySeries holds parallel hourly arrays; nil entries are missing values
type HourlySeries struct {
	Time                []string
	Temperature         []*float64
	ApparentTemperature []*float64
	WeatherCode         []*int
}

// Len returns the number of hourly slots
func (h HourlySeries) Len() int {
	return len(h.Time)
}

// DailySeries holds parallel daily arrays; nil entries are missing values
type DailySeries struct {
	Time           []string
	WeatherCode    []*int
	TemperatureMax []*float64
	TemperatureMin []*float64
	Sunrise        []string
	Sunset         []string
}

// Len returns the number of days
func (d DailySeries) Len() int {
	return len(d.Time)
}
