package service

import "ulascansenturk/weather-mcp/internal/payload"

// Terminal outcomes other than a rendered report.
const (
	MsgAlertsUnavailable = "Unable to fetch alerts or no alerts found."
	MsgNoActiveAlerts    = "No active alerts for this state."

	MsgPointsUnavailable        = "Unable to fetch forecast data for this location. Ensure coordinates are within the US."
	MsgInvalidPoints            = "Invalid response format from weather service."
	MsgForecastUnavailable      = "Unable to fetch detailed forecast."
	MsgInvalidForecast          = "Invalid forecast data format."
	MsgInternationalUnavailable = "Unable to fetch international forecast data."
	MsgInvalidInternational     = "Invalid forecast data format received."

	msgInvalidLatitude  = "Invalid latitude: %s. Must be between -90 and 90."
	msgInvalidLongitude = "Invalid longitude: %s. Must be between -180 and 180."
)

// Placeholders used when an optional upstream field is missing or null.
const (
	fallbackUnknown          = "Unknown"
	fallbackNotAvailable     = "N/A"
	fallbackDescription      = "No description available"
	fallbackInstruction      = "No specific instructions provided"
	fallbackTemperatureUnit  = "F"
	fallbackWindDirection    = ""
	fallbackDetailedForecast = "No forecast available"
)

// field pairs an upstream key with the text rendered when it is absent.
type field struct {
	key      string
	fallback string
}

var (
	alertEvent       = field{"event", fallbackUnknown}
	alertArea        = field{"areaDesc", fallbackUnknown}
	alertSeverity    = field{"severity", fallbackUnknown}
	alertDescription = field{"description", fallbackDescription}
	alertInstruction = field{"instruction", fallbackInstruction}

	periodName             = field{"name", fallbackUnknown}
	periodTemperature      = field{"temperature", fallbackNotAvailable}
	periodTemperatureUnit  = field{"temperatureUnit", fallbackTemperatureUnit}
	periodWindSpeed        = field{"windSpeed", fallbackNotAvailable}
	periodWindDirection    = field{"windDirection", fallbackWindDirection}
	periodDetailedForecast = field{"detailedForecast", fallbackDetailedForecast}

	currentTemperature = field{"temperature_2m", fallbackNotAvailable}
	currentWindSpeed   = field{"wind_speed_10m", fallbackNotAvailable}
)

func (f field) from(o payload.Object) string {
	return o.Text(f.key, f.fallback)
}
