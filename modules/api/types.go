// Package api exposes the calculator modules over HTTP.
package api

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse reports API health.
type HealthResponse struct {
	Status string `json:"status"`
	Module string `json:"module"`
}
