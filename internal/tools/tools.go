// Package tools is the single dispatch point for the weather operations.
// Both the plain HTTP API and the agent tool server call through it, so the
// missing-parameter handling and tool metadata are defined once.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"ulascansenturk/weather-mcp/internal/service"
)

const (
	AlertsUSName              = "get_alerts_us"
	ForecastUSName            = "get_forecast_us"
	ForecastInternationalName = "get_forecast_international"
)

const (
	AlertsUSDescription              = "Get weather alerts for a US state."
	ForecastUSDescription            = "Get weather forecast for a location in US."
	ForecastInternationalDescription = "Get weather forecast for any international location."
)

const (
	MsgMissingState       = "Please provide a state code (e.g., CA, NY)."
	MsgMissingCoordinates = "Please provide latitude and longitude."
)

type AlertsInput struct {
	State string `json:"state,omitempty" jsonschema:"Two-letter US state code (e.g. CA, NY)"`
}

// CoordinatesInput uses pointers so that an absent coordinate can be told
// apart from zero.
type CoordinatesInput struct {
	Latitude  *float64 `json:"latitude,omitempty" jsonschema:"Latitude of the location (-90 to 90)"`
	Longitude *float64 `json:"longitude,omitempty" jsonschema:"Longitude of the location (-180 to 180)"`
}

// Descriptor is the metadata an agent needs to call a tool.
type Descriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

// Descriptors lists every tool with its parameter schema.
func Descriptors() ([]Descriptor, error) {
	alerts, err := jsonschema.For[AlertsInput](nil)
	if err != nil {
		return nil, fmt.Errorf("schema for %s: %w", AlertsUSName, err)
	}

	coordinates, err := jsonschema.For[CoordinatesInput](nil)
	if err != nil {
		return nil, fmt.Errorf("schema for coordinates: %w", err)
	}

	return []Descriptor{
		{Name: AlertsUSName, Description: AlertsUSDescription, InputSchema: alerts},
		{Name: ForecastUSName, Description: ForecastUSDescription, InputSchema: coordinates},
		{Name: ForecastInternationalName, Description: ForecastInternationalDescription, InputSchema: coordinates},
	}, nil
}

type Dispatcher struct {
	weatherService service.WeatherService
}

func NewDispatcher(weatherService service.WeatherService) *Dispatcher {
	return &Dispatcher{
		weatherService: weatherService,
	}
}

func (d *Dispatcher) GetAlertsUS(ctx context.Context, in AlertsInput) string {
	state := strings.TrimSpace(in.State)
	if state == "" {
		return MsgMissingState
	}

	// Casers keep state, so one is built per call.
	return d.weatherService.AlertsUS(ctx, cases.Upper(language.Und).String(state))
}

func (d *Dispatcher) GetForecastUS(ctx context.Context, in CoordinatesInput) string {
	if in.Latitude == nil || in.Longitude == nil {
		return MsgMissingCoordinates
	}

	return d.weatherService.ForecastUS(ctx, *in.Latitude, *in.Longitude)
}

func (d *Dispatcher) GetForecastInternational(ctx context.Context, in CoordinatesInput) string {
	if in.Latitude == nil || in.Longitude == nil {
		return MsgMissingCoordinates
	}

	return d.weatherService.ForecastInternational(ctx, *in.Latitude, *in.Longitude)
}
