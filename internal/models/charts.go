package models

import "errors"

// ErrMissingFields is returned when the request lacks a usable prompt. The
// handler maps it to a 400 with the fixed detail message.
var ErrMissingFields = errors.New("Missing required fields")

// ChartRequest represents the body of a charts-parse request
type ChartRequest struct {
	Prompt    string `json:"prompt" example:"Sales per quarter for 2024"`
	ChartType string `json:"chartType" example:"bar"`
}

func (r ChartRequest) Validate() error {
	if r.Prompt == "" {
		return ErrMissingFields
	}
	return nil
}

// ChartResponse carries the raw model completion. The text is relayed as-is;
// the service never parses it, even though the templates ask for JSON.
type ChartResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the failure envelope for server-side errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse is the failure envelope for request validation errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}
