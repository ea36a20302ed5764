package service

import (
	"context"
	"strconv"
	"strings"

	"ulascansenturk/weather-mcp/internal/providers"
)

// separator joins rendered report entries.
const separator = "\n---\n"

// WeatherService renders weather reports as text. Every method returns a
// report or a human-readable failure sentence and never an error.
type WeatherService interface {
	AlertsUS(ctx context.Context, state string) string
	ForecastUS(ctx context.Context, latitude, longitude float64) string
	ForecastInternational(ctx context.Context, latitude, longitude float64) string
}

// Endpoints holds the upstream base URLs, without trailing slash.
type Endpoints struct {
	NWSBase           string
	InternationalBase string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		NWSBase:           "https://api.weather.gov",
		InternationalBase: "https://api.open-meteo.com",
	}
}

type weatherService struct {
	client    providers.Client
	endpoints Endpoints
}

func NewWeatherService(client providers.Client, endpoints Endpoints) WeatherService {
	endpoints.NWSBase = strings.TrimRight(endpoints.NWSBase, "/")
	endpoints.InternationalBase = strings.TrimRight(endpoints.InternationalBase, "/")

	return &weatherService{
		client:    client,
		endpoints: endpoints,
	}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
