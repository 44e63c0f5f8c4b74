package openmeteo

import (
	"fmt"

	"nimbus/internal/domain"
)

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1"`
	Admin2    string  `json:"admin2"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

type forecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   *currentSection `json:"current"`
	Hourly    *hourlySection  `json:"hourly"`
	Daily     *dailySection   `json:"daily"`
}

type currentSection struct {
	Time                string   `json:"time"`
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	IsDay               *int     `json:"is_day"`
	WeatherCode         *int     `json:"weather_code"`
}

type hourlySection struct {
	Time                []string   `json:"time"`
	Temperature         []*float64 `json:"temperature_2m"`
	ApparentTemperature []*float64 `json:"apparent_temperature"`
	WeatherCode         []*int     `json:"weather_code"`
}

type dailySection struct {
	Time           []string   `json:"time"`
	WeatherCode    []*int     `json:"weather_code"`
	TemperatureMax []*float64 `json:"temperature_2m_max"`
	TemperatureMin []*float64 `json:"temperature_2m_min"`
	Sunrise        []string   `json:"sunrise"`
	Sunset         []string   `json:"sunset"`
}

// snapshot validates the payload and pads short parallel arrays with nils so
// every index of Time has a slot in each series.
func (r forecastResponse) snapshot() (*domain.ForecastSnapshot, error) {
	if r.Current == nil || r.Hourly == nil || r.Daily == nil {
		return nil, fmt.Errorf("%w: missing current, hourly or daily section", ErrMalformedResponse)
	}

	snap := &domain.ForecastSnapshot{
		Timezone: r.Timezone,
		Current: domain.CurrentConditions{
			Time:                r.Current.Time,
			Temperature:         r.Current.Temperature,
			ApparentTemperature: r.Current.ApparentTemperature,
			IsDay:               r.Current.IsDay == nil || *r.Current.IsDay == 1,
			WeatherCode:         r.Current.WeatherCode,
		},
	}

	n := len(r.Hourly.Time)
	snap.Hourly = domain.HourlySeries{
		Time:                r.Hourly.Time,
		Temperature:         padded(r.Hourly.Temperature, n),
		ApparentTemperature: padded(r.Hourly.ApparentTemperature, n),
		WeatherCode:         padded(r.Hourly.WeatherCode, n),
	}

	d := len(r.Daily.Time)
	snap.Daily = domain.DailySeries{
		Time:           r.Daily.Time,
		WeatherCode:    padded(r.Daily.WeatherCode, d),
		TemperatureMax: padded(r.Daily.TemperatureMax, d),
		TemperatureMin: padded(r.Daily.TemperatureMin, d),
		Sunrise:        paddedStrings(r.Daily.Sunrise, d),
		Sunset:         paddedStrings(r.Daily.Sunset, d),
	}
	return snap, nil
}

func padded[T any](in []*T, n int) []*T {
	out := make([]*T, n)
	copy(out, in)
	return out
}

func paddedStrings(in []string, n int) []string {
	out := make([]string, n)
	copy(out, in)
	return out
}
