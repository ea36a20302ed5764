package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	ServiceName   string
	ServerAddress string
	Transport     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	UserAgent            string
	NWSAPIBase           string
	InternationalAPIBase string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-mcp")
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("TRANSPORT", TransportStdio)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("USER_AGENT", "weather-app/1.0")
	v.SetDefault("NWS_API_BASE", "https://api.weather.gov")
	v.SetDefault("INTERNATIONAL_API_BASE", "https://api.open-meteo.com")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	serverAddress := v.GetString("SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = "0.0.0.0:" + v.GetString("APP_PORT")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        serverAddress,
		Transport:            v.GetString("TRANSPORT"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		UserAgent:            v.GetString("USER_AGENT"),
		NWSAPIBase:           v.GetString("NWS_API_BASE"),
		InternationalAPIBase: v.GetString("INTERNATIONAL_API_BASE"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q, expected %q or %q", c.Transport, TransportStdio, TransportHTTP)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}

	return nil
}

// OverrideTransport applies a transport given on the command line.
func (c *Config) OverrideTransport(args []string) error {
	if len(args) == 0 {
		return nil
	}

	c.Transport = args[0]

	return c.Validate()
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
