package handlers

import "net/http"

// NewRouter serves the agent protocol at /mcp and the plain API everywhere else.
func NewRouter(weatherHandler *WeatherHandler, mcpHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/", weatherHandler)

	return mux
}
