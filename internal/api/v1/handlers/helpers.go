package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

var errorCodes = map[int]string{
	http.StatusBadRequest:       "BAD_REQUEST",
	http.StatusNotFound:         "NOT_FOUND",
	http.StatusMethodNotAllowed: "METHOD_NOT_ALLOWED",
}

// respondWithError writes a single-entry error envelope. Statuses without a
// dedicated code are reported as INTERNAL_ERROR.
func respondWithError(w http.ResponseWriter, status int, detail string) {
	code, ok := errorCodes[status]
	if !ok {
		code = "INTERNAL_ERROR"
	}

	log.Debug().Int("status", status).Str("code", code).Msg(detail)

	respondWithJSON(w, status, ErrorResponse{
		Errors: []Error{{
			Code:   code,
			Detail: detail,
			Status: status,
			Title:  http.StatusText(status),
		}},
	})
}

func respondWithJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// optionalFloat reads a query parameter that may be absent. An empty value
// counts as absent.
func optionalFloat(query url.Values, name string) (*float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("parameter '%s' must be a number, got %q", name, raw)
	}

	return &v, nil
}
