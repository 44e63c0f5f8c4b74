package forecast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/internal/domain"
	"nimbus/internal/weathercode"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestHourLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"now", "Now"},
		{"2025-03-04T13:00", "1PM"},
		{"2025-03-04T00:00", "12AM"},
		{"2025-03-04T12:00", "12PM"},
		{"2025-03-04T09:45", "9AM"},
		{"2025-03-04T23:00:00", "11PM"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HourLabel(tt.in))
		})
	}
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Today", DayLabel(0, "2025-03-04"))
	assert.Equal(t, "Wed", DayLabel(1, "2025-03-05"))
	assert.Equal(t, "Mon", DayLabel(3, "2024-01-01"))
	// time of day does not move the date
	assert.Equal(t, "Mon", DayLabel(3, "2024-01-01T23:59"))
	assert.Equal(t, "Mon", DayLabel(3, "2024-01-01T00:00"))
}

func TestFormatTemp(t *testing.T) {
	assert.Equal(t, "-", FormatTemp(nil))
	assert.Equal(t, "72°", FormatTemp(fp(72.4)))
	assert.Equal(t, "73°", FormatTemp(fp(72.5)))
	assert.Equal(t, "-3°", FormatTemp(fp(-2.6)))
	assert.Equal(t, "0°", FormatTemp(fp(-0.2)))
}

func hourly(n int) domain.HourlySeries {
	h := domain.HourlySeries{}
	for k := 0; k < n; k++ {
		h.Time = append(h.Time, fmt.Sprintf("2025-03-04T%02d:00", k%24))
		h.Temperature = append(h.Temperature, fp(float64(40+k)))
		h.ApparentTemperature = append(h.ApparentTemperature, fp(float64(38+k)))
		h.WeatherCode = append(h.WeatherCode, ip(3))
	}
	return h
}

func TestHourlyWindowSkipsPastHour(t *testing.T) {
	win := HourlyWindow(hourly(40))

	require.Len(t, win, 25)
	assert.Equal(t, 1, win[0].Index)
	assert.Equal(t, 25, win[24].Index)
	assert.Equal(t, "Now", win[0].Label)
	assert.Equal(t, "2AM", win[1].Label)
	assert.Equal(t, "41°", win[0].Temp())
}

func TestHourlyWindowTruncatesShortSeries(t *testing.T) {
	win := HourlyWindow(hourly(5))
	require.Len(t, win, 4)
	assert.Equal(t, 4, win[3].Index)

	assert.Empty(t, HourlyWindow(hourly(1)))
	assert.Empty(t, HourlyWindow(domain.HourlySeries{}))
}

func TestHourlyWindowKeepsPositionsOfMissingValues(t *testing.T) {
	h := hourly(30)
	h.Temperature[5] = nil
	h.WeatherCode[5] = nil

	win := HourlyWindow(h)
	require.Len(t, win, 25)
	assert.Equal(t, "-", win[4].Temp())
	assert.Equal(t, 5, win[4].Index)
	assert.Equal(t, weathercode.Unknown, win[4].Description())
	assert.Equal(t, "44°", win[3].Temp())
	assert.Equal(t, "46°", win[5].Temp())
}

func TestDailyRows(t *testing.T) {
	d := domain.DailySeries{
		Time:           []string{"2025-03-04", "2025-03-05", "2025-03-06"},
		WeatherCode:    []*int{ip(0), nil, ip(95)},
		TemperatureMax: []*float64{fp(50.2), fp(47.3), nil},
		TemperatureMin: []*float64{fp(38.9), nil, fp(33)},
		Sunrise:        []string{"2025-03-04T06:58"},
	}

	rows := DailyRows(d)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Today", "Wed", "Thu"}, []string{rows[0].Label, rows[1].Label, rows[2].Label})
	assert.Equal(t, "Clear Sky", rows[0].Description())
	assert.Equal(t, "Unknown", rows[1].Description())
	assert.Equal(t, "Thunderstorm: Slight or Moderate", rows[2].Description())
	assert.Nil(t, rows[1].Min)
	assert.Nil(t, rows[2].Max)
	assert.Equal(t, "06:58", SunTime(rows[0].Sunrise))
	assert.Equal(t, "-", SunTime(rows[1].Sunrise))
}

func TestHeadline(t *testing.T) {
	s := &domain.ForecastSnapshot{
		Current: domain.CurrentConditions{Temperature: fp(48.6), ApparentTemperature: fp(44.1), IsDay: false, WeatherCode: ip(0)},
		Daily: domain.DailySeries{
			Time:           []string{"2025-03-04"},
			TemperatureMax: []*float64{fp(50.2)},
			TemperatureMin: []*float64{fp(38.9)},
		},
	}

	h := Headline(s)
	assert.Equal(t, "49°", h.Temperature)
	assert.Equal(t, "44°", h.FeelsLike)
	assert.Equal(t, "Clear Sky", h.Description)
	assert.Equal(t, "H:50° | L:39°", h.HighLow)
	assert.Equal(t, weathercode.IconForTime(0, false), h.Icon)

	empty := Headline(&domain.ForecastSnapshot{})
	assert.Equal(t, "-", empty.Temperature)
	assert.Equal(t, "Unknown", empty.Description)
	assert.Equal(t, "H:- | L:-", empty.HighLow)

	assert.Equal(t, "-", Headline(nil).Temperature)
}

func TestTableListsEveryHourWithPlaceholders(t *testing.T) {
	s := &domain.ForecastSnapshot{Hourly: hourly(4)}
	s.Hourly.Temperature[2] = nil

	out := Table(domain.SelectedLocation{Name: "Berlin", Country: "Germany"}, s)
	assert.Contains(t, out, "Berlin")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "Hour 2: N/A")
	assert.Contains(t, out, "2025-03-04T03:00")
	assert.Contains(t, out, "2025-03-04T00:00")
	assert.NotContains(t, out, "Hour 1: N/A")

	assert.Contains(t, Table(domain.SelectedLocation{Name: "X"}, nil), "No forecast loaded yet.")
}
