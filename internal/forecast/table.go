package forecast

import (
	"fmt"
	"strings"

	"nimbus/internal/domain"
	"nimbus/internal/weathercode"
)

// Table renders the complete hourly and daily series as plain text for the
// pager. Every source index gets a line, missing values included.
func Table(loc domain.SelectedLocation, s *domain.ForecastSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", loc.Name)
	if sub := loc.Subtitle(); sub != "" {
		fmt.Fprintf(&b, "%s\n", sub)
	}
	fmt.Fprintf(&b, "%.4f, %.4f\n\n", loc.Latitude, loc.Longitude)

	if s == nil {
		b.WriteString("No forecast loaded yet.\n")
		return b.String()
	}
	if s.Timezone != "" {
		fmt.Fprintf(&b, "Timezone: %s\n", s.Timezone)
	}
	fmt.Fprintf(&b, "Fetched:  %s\n\n", s.FetchedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("DAILY FORECAST\n")
	fmt.Fprintf(&b, "%-6s %-10s %6s %6s  %-5s %-5s  %s\n", "Day", "Date", "High", "Low", "Rise", "Set", "Conditions")
	for _, r := range DailyRows(s.Daily) {
		date := r.Date
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Fprintf(&b, "%-6s %-10s %6s %6s  %-5s %-5s  %s\n",
			r.Label, date, FormatTemp(r.Max), FormatTemp(r.Min),
			SunTime(r.Sunrise), SunTime(r.Sunset), r.Description())
	}

	b.WriteString("\nHOURLY FORECAST\n")
	for i := 0; i < s.Hourly.Len(); i++ {
		temp := at(s.Hourly.Temperature, i)
		if temp == nil {
			fmt.Fprintf(&b, "%s\n", HourlyPlaceholder(i))
			continue
		}
		label := HourLabel(s.Hourly.Time[i])
		if i == 1 {
			label = NowLabel
		}
		fmt.Fprintf(&b, "%-16s %-5s %6s  feels %6s  %s\n",
			s.Hourly.Time[i], label, FormatTemp(temp),
			FormatTemp(at(s.Hourly.ApparentTemperature, i)),
			weathercode.DescriptionPtr(at(s.Hourly.WeatherCode, i)))
	}
	return b.String()
}
