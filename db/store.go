// Package db provides the calculation history store. Persistence is
// optional: the engine and API work without a store attached.
package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is one saved sizing calculation.
type CalculationRecord struct {
	ID                 uuid.UUID `json:"id"`
	ProjectID          int64     `json:"project_id"`
	Name               string    `json:"name"`
	Voltage            float64   `json:"voltage"`
	LoadKW             float64   `json:"load_kw"`
	PowerFactor        float64   `json:"power_factor"`
	Distance           float64   `json:"distance"`
	RecommendedSize    string    `json:"recommended_cable_size"`
	VoltageDropPercent float64   `json:"voltage_drop"`
	PowerLossWatts     float64   `json:"power_loss"`
	CreatedAt          time.Time `json:"created_at"`
}

// CalculationStore persists and lists sizing calculations.
type CalculationStore interface {
	// Save stores a calculation record, assigning ID and CreatedAt
	// when unset.
	Save(ctx context.Context, rec *CalculationRecord) error

	// ListByProject returns a project's calculations, newest first.
	ListByProject(ctx context.Context, projectID int64) ([]CalculationRecord, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close() error
}
