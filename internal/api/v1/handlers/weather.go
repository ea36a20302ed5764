package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/tools"
)

// WeatherHandler serves each weather tool as a GET route named after the
// tool. Reports are returned as a JSON string. Requests carry no deadline of
// their own: the fetcher bounds every upstream call.
type WeatherHandler struct {
	dispatcher  *tools.Dispatcher
	descriptors []tools.Descriptor
}

func NewWeatherHandler(dispatcher *tools.Dispatcher) (*WeatherHandler, error) {
	descriptors, err := tools.Descriptors()
	if err != nil {
		return nil, err
	}

	return &WeatherHandler{
		dispatcher:  dispatcher,
		descriptors: descriptors,
	}, nil
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/" + tools.AlertsUSName:
		h.GetAlertsUS(w, r)
	case "/" + tools.ForecastUSName:
		h.GetForecastUS(w, r)
	case "/" + tools.ForecastInternationalName:
		h.GetForecastInternational(w, r)
	case "/tools":
		h.ListTools(w, r)
	case "/health":
		h.Health(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetAlertsUS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	in := tools.AlertsInput{State: r.URL.Query().Get("state")}
	report := h.dispatcher.GetAlertsUS(r.Context(), in)

	log.Debug().Str("tool", tools.AlertsUSName).Str("state", in.State).Msg("served")
	respondWithJSON(w, http.StatusOK, report)
}

func (h *WeatherHandler) GetForecastUS(w http.ResponseWriter, r *http.Request) {
	h.serveCoordinates(w, r, tools.ForecastUSName, h.dispatcher.GetForecastUS)
}

func (h *WeatherHandler) GetForecastInternational(w http.ResponseWriter, r *http.Request) {
	h.serveCoordinates(w, r, tools.ForecastInternationalName, h.dispatcher.GetForecastInternational)
}

func (h *WeatherHandler) serveCoordinates(
	w http.ResponseWriter,
	r *http.Request,
	tool string,
	call func(context.Context, tools.CoordinatesInput) string,
) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()

	latitude, err := optionalFloat(query, "latitude")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	longitude, err := optionalFloat(query, "longitude")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := call(r.Context(), tools.CoordinatesInput{Latitude: latitude, Longitude: longitude})

	log.Debug().Str("tool", tool).Msg("served")
	respondWithJSON(w, http.StatusOK, report)
}

func (h *WeatherHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, ToolsResponse{Tools: h.descriptors})
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
