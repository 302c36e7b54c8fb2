// Package api - API types for cable sizing
// These types define the contract of the sizing endpoints.
// The API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"cablesizer/core/compare"
	"cablesizer/core/sizing"
)

// SizeRequest is the input to POST /size and POST /report
type SizeRequest struct {
	sizing.Input
}

// SizeResponse is the output of POST /size
type SizeResponse struct {
	// RequestID identifies this request in logs
	RequestID string `json:"request_id"`

	// Timestamp is when the calculation ran
	Timestamp time.Time `json:"timestamp"`

	// Result is the engine's recommendation
	Result sizing.Result `json:"result"`

	// Warnings carries non-fatal validation messages
	Warnings []string `json:"warnings,omitempty"`

	// Metadata describes the execution
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the engine version that produced the result
	EngineVersion string `json:"engine_version"`

	// DurationMs is the calculation wall time
	DurationMs int64 `json:"duration_ms"`
}

// CompareRequest is the input to POST /compare
type CompareRequest struct {
	Scenarios []compare.Scenario `json:"scenarios"`
}

// CalculationRequest is the input to POST /calculations
type CalculationRequest struct {
	// ProjectID groups saved calculations
	ProjectID int64 `json:"project_id"`

	// Name labels the saved calculation
	Name string `json:"name"`

	sizing.Input
}

// ErrorDetail describes one error in a response
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse is the error envelope for all endpoints
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
