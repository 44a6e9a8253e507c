// Package handlers implements the HTTP handlers for the phone-resale JSON API.
package handlers

// ErrorResponse is the error body written by the plain echo handlers.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
