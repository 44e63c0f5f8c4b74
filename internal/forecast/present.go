package forecast

import (
	"fmt"
	"math"
	"time"

	"nimbus/internal/domain"
	"nimbus/internal/weathercode"
)

const (
	// NowLabel is shown for the first hourly slot
	NowLabel = "Now"
	// TodayLabel is shown for the first daily row
	TodayLabel = "Today"
	// Placeholder replaces a missing temperature
	Placeholder = "-"

	// HourlyWindowSize is "now" plus the next 24 hours
	HourlyWindowSize = 25
)

var hourLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339}

// HourLabel formats an Open-Meteo wall-clock timestamp as "1PM". The literal
// "now" maps to NowLabel. Unparseable input is returned unchanged.
func HourLabel(ts string) string {
	if ts == "now" {
		return NowLabel
	}
	for _, layout := range hourLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("3PM")
		}
	}
	return ts
}

// DayLabel returns TodayLabel for index 0, else the weekday of the date part
// of date ("Mon"). The time-of-day component is ignored.
func DayLabel(index int, date string) string {
	if index == 0 {
		return TodayLabel
	}
	if len(date) > 10 {
		date = date[:10]
	}
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// FormatTemp rounds half away from zero and appends a degree sign
func FormatTemp(v *float64) string {
	if v == nil {
		return Placeholder
	}
	r := math.Round(*v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return fmt.Sprintf("%.0f°", r)
}

// HourlyPlaceholder is the full-table text for a missing hourly temperature
func HourlyPlaceholder(index int) string {
	return fmt.Sprintf("Hour %d: N/A", index)
}

// HourSlot is one column of the hourly strip
type HourSlot struct {
	Index       int // position in the source series
	Time        string
	Label       string
	Temperature *float64
	Apparent    *float64
	Code        *int
}

// Temp returns the formatted temperature or Placeholder
func (s HourSlot) Temp() string {
	return FormatTemp(s.Temperature)
}

// Description returns the weather code description
func (s HourSlot) Description() string {
	return weathercode.DescriptionPtr(s.Code)
}

// HourlyWindow returns source indices 1..25. The series starts one hour in the
// past, so index 1 is the current hour. Short series are truncated.
func HourlyWindow(h domain.HourlySeries) []HourSlot {
	end := min(h.Len(), HourlyWindowSize+1)
	if end <= 1 {
		return nil
	}
	slots := make([]HourSlot, 0, end-1)
	for i := 1; i < end; i++ {
		label := HourLabel(h.Time[i])
		if i == 1 {
			label = NowLabel
		}
		slots = append(slots, HourSlot{
			Index:       i,
			Time:        h.Time[i],
			Label:       label,
			Temperature: at(h.Temperature, i),
			Apparent:    at(h.ApparentTemperature, i),
			Code:        at(h.WeatherCode, i),
		})
	}
	return slots
}

// DayRow is one line of the daily list
type DayRow struct {
	Index   int
	Date    string
	Label   string
	Max     *float64
	Min     *float64
	Code    *int
	Sunrise string
	Sunset  string
}

// Description returns the weather code description
func (r DayRow) Description() string {
	return weathercode.DescriptionPtr(r.Code)
}

// DailyRows returns every returned day, unwindowed
func DailyRows(d domain.DailySeries) []DayRow {
	rows := make([]DayRow, 0, d.Len())
	for i, date := range d.Time {
		rows = append(rows, DayRow{
			Index:   i,
			Date:    date,
			Label:   DayLabel(i, date),
			Max:     at(d.TemperatureMax, i),
			Min:     at(d.TemperatureMin, i),
			Code:    at(d.WeatherCode, i),
			Sunrise: stringAt(d.Sunrise, i),
			Sunset:  stringAt(d.Sunset, i),
		})
	}
	return rows
}

// Summary is the headline block of the details screen
type Summary struct {
	Temperature string
	FeelsLike   string
	Description string
	Icon        weathercode.Icon
	HighLow     string
}

// Headline derives the current temperature, description and today's range
func Headline(s *domain.ForecastSnapshot) Summary {
	if s == nil {
		return Summary{
			Temperature: Placeholder,
			FeelsLike:   Placeholder,
			Description: weathercode.Unknown,
			Icon:        weathercode.DefaultIcon,
			HighLow:     fmt.Sprintf("H:%s | L:%s", Placeholder, Placeholder),
		}
	}

	icon := weathercode.DefaultIcon
	if s.Current.WeatherCode != nil {
		icon = weathercode.IconForTime(*s.Current.WeatherCode, s.Current.IsDay)
	}
	return Summary{
		Temperature: FormatTemp(s.Current.Temperature),
		FeelsLike:   FormatTemp(s.Current.ApparentTemperature),
		Description: weathercode.DescriptionPtr(s.Current.WeatherCode),
		Icon:        icon,
		HighLow: fmt.Sprintf("H:%s | L:%s",
			FormatTemp(at(s.Daily.TemperatureMax, 0)),
			FormatTemp(at(s.Daily.TemperatureMin, 0))),
	}
}

// SunTime returns the "15:04" part of an ISO wall-clock timestamp
func SunTime(ts string) string {
	for _, layout := range hourLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("15:04")
		}
	}
	if ts == "" {
		return Placeholder
	}
	return ts
}

func at[T any](s []*T, i int) *T {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

func stringAt(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
