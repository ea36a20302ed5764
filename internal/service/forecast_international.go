package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/payload"
)

// maxDays caps the rendered daily entries; later days are dropped.
const maxDays = 5

const (
	currentTemplate = `
Current Weather:
Temperature: %s°C
Wind Speed: %s km/h
`
	dailyTemplate = `
%s:
High: %s°C
Low: %s°C
Weather Code: %s
`
)

const (
	currentParams = "temperature_2m,weather_code,wind_speed_10m"
	dailyParams   = "temperature_2m_max,temperature_2m_min,weather_code"
)

var errMalformedForecast = errors.New("malformed forecast document")

// DailyForecast is the column-oriented daily block: index i of every column
// describes the same day.
type DailyForecast struct {
	columns payload.Object
}

// Days is the number of entries announced by the time column. A missing
// time column means no days.
func (d DailyForecast) Days() (int, error) {
	if !d.columns.Has("time") {
		return 0, nil
	}

	times, ok := d.columns.Array("time")
	if !ok {
		return 0, fmt.Errorf("%w: daily.time is not an array", errMalformedForecast)
	}

	return len(times), nil
}

func (d DailyForecast) cell(column string, i int) (string, error) {
	values, ok := d.columns.Array(column)
	if !ok {
		return "", fmt.Errorf("%w: missing daily.%s", errMalformedForecast, column)
	}
	if i >= len(values) {
		return "", fmt.Errorf("%w: daily.%s has no index %d", errMalformedForecast, column, i)
	}

	return payload.Render(values[i], fallbackNotAvailable), nil
}

// Entry renders day i.
func (d DailyForecast) Entry(i int) (string, error) {
	cells := make([]any, 0, 4)
	for _, column := range []string{"time", "temperature_2m_max", "temperature_2m_min", "weather_code"} {
		value, err := d.cell(column, i)
		if err != nil {
			return "", err
		}
		cells = append(cells, value)
	}

	return fmt.Sprintf(dailyTemplate, cells...), nil
}

func (s *weatherService) ForecastInternational(ctx context.Context, latitude, longitude float64) string {
	if latitude < -90 || latitude > 90 {
		return fmt.Sprintf(msgInvalidLatitude, formatCoordinate(latitude))
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Sprintf(msgInvalidLongitude, formatCoordinate(longitude))
	}

	forecastURL := fmt.Sprintf("%s/v1/forecast?latitude=%s&longitude=%s&current=%s&daily=%s&timezone=auto",
		s.endpoints.InternationalBase,
		formatCoordinate(latitude),
		formatCoordinate(longitude),
		currentParams,
		dailyParams,
	)

	doc, ok := s.client.Fetch(ctx, forecastURL)
	if !ok || len(doc) == 0 {
		return MsgInternationalUnavailable
	}

	report, err := renderInternational(doc)
	if err != nil {
		log.Error().Err(err).Msg("error parsing international forecast data")
		return MsgInvalidInternational
	}

	return report
}

func renderInternational(doc payload.Object) (string, error) {
	current, ok := doc.Object("current")
	if !ok {
		return "", fmt.Errorf("%w: missing current", errMalformedForecast)
	}

	forecasts := []string{
		fmt.Sprintf(currentTemplate, currentTemperature.from(current), currentWindSpeed.from(current)),
	}

	columns, ok := doc.Object("daily")
	if !ok {
		return "", fmt.Errorf("%w: missing daily", errMalformedForecast)
	}
	daily := DailyForecast{columns: columns}

	days, err := daily.Days()
	if err != nil {
		return "", err
	}

	for i := 0; i < min(maxDays, days); i++ {
		entry, err := daily.Entry(i)
		if err != nil {
			return "", err
		}
		forecasts = append(forecasts, entry)
	}

	return strings.Join(forecasts, separator), nil
}
