package handlers

import "ulascansenturk/weather-mcp/internal/tools"

type HealthResponse struct {
	Status string `json:"status"`
}

type ToolsResponse struct {
	Tools []tools.Descriptor `json:"tools"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
