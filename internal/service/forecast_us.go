package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/payload"
)

// maxPeriods caps the rendered forecast periods; later periods are dropped.
const maxPeriods = 5

const periodTemplate = `
%s:
Temperature: %s°%s
Wind: %s %s
Forecast: %s
`

// PointsResponse is the NWS points lookup, which maps coordinates to the
// forecast resource of their grid cell.
type PointsResponse struct {
	doc payload.Object
}

// ForecastURL returns properties.forecast when it is a non-empty string.
func (p PointsResponse) ForecastURL() (string, bool) {
	props, ok := p.doc.Object("properties")
	if !ok {
		return "", false
	}

	forecastURL, ok := props.String("forecast")
	if !ok || forecastURL == "" {
		return "", false
	}

	return forecastURL, true
}

// ForecastResponse is the NWS gridpoint forecast.
type ForecastResponse struct {
	doc payload.Object
}

// Periods returns properties.periods in upstream order.
func (f ForecastResponse) Periods() ([]any, bool) {
	props, ok := f.doc.Object("properties")
	if !ok {
		return nil, false
	}

	return props.Array("periods")
}

func (s *weatherService) ForecastUS(ctx context.Context, latitude, longitude float64) string {
	lat, lon := formatCoordinate(latitude), formatCoordinate(longitude)
	pointsURL := fmt.Sprintf("%s/points/%s,%s", s.endpoints.NWSBase, lat, lon)

	pointsDoc, ok := s.client.Fetch(ctx, pointsURL)
	if !ok || len(pointsDoc) == 0 {
		return MsgPointsUnavailable
	}

	forecastURL, ok := PointsResponse{doc: pointsDoc}.ForecastURL()
	if !ok {
		log.Error().Str("latitude", lat).Str("longitude", lon).Msg("missing 'forecast' in points response")
		return MsgInvalidPoints
	}

	forecastDoc, ok := s.client.Fetch(ctx, forecastURL)
	if !ok || len(forecastDoc) == 0 {
		return MsgForecastUnavailable
	}

	periods, ok := ForecastResponse{doc: forecastDoc}.Periods()
	if !ok {
		log.Error().Str("url", forecastURL).Msg("missing 'periods' in forecast response")
		return MsgInvalidForecast
	}

	if len(periods) > maxPeriods {
		periods = periods[:maxPeriods]
	}

	forecasts := make([]string, 0, len(periods))
	for _, period := range periods {
		forecasts = append(forecasts, formatPeriod(period))
	}

	return strings.Join(forecasts, separator)
}

func formatPeriod(period any) string {
	p, _ := payload.AsObject(period)

	return fmt.Sprintf(periodTemplate,
		periodName.from(p),
		periodTemperature.from(p),
		periodTemperatureUnit.from(p),
		periodWindSpeed.from(p),
		periodWindDirection.from(p),
		periodDetailedForecast.from(p),
	)
}
