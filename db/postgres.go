package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"cablesizer/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS cable_calculations (
	id UUID PRIMARY KEY,
	project_id BIGINT NOT NULL,
	name TEXT NOT NULL,
	voltage DOUBLE PRECISION NOT NULL,
	load_kw DOUBLE PRECISION NOT NULL,
	power_factor DOUBLE PRECISION NOT NULL,
	distance DOUBLE PRECISION NOT NULL,
	recommended_cable_size TEXT NOT NULL,
	voltage_drop DOUBLE PRECISION NOT NULL,
	power_loss DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cable_calculations_project
	ON cable_calculations (project_id, created_at DESC);
`

// PostgresStore is a CalculationStore backed by Postgres.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to Postgres and ensures the schema exists.
func OpenPostgres(ctx context.Context, dsn string, maxOpenConns int) (*PostgresStore, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Storage("failed to open database", err)
	}
	if maxOpenConns > 0 {
		conn.SetMaxOpenConns(maxOpenConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Storage("database unreachable", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, errors.Storage("failed to ensure schema", err)
	}

	return &PostgresStore{db: conn}, nil
}

// Save stores a calculation record.
func (s *PostgresStore) Save(ctx context.Context, rec *CalculationRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cable_calculations
			(id, project_id, name, voltage, load_kw, power_factor, distance,
			 recommended_cable_size, voltage_drop, power_loss, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.ProjectID, rec.Name, rec.Voltage, rec.LoadKW,
		rec.PowerFactor, rec.Distance, rec.RecommendedSize,
		rec.VoltageDropPercent, rec.PowerLossWatts, rec.CreatedAt,
	)
	if err != nil {
		return errors.Storage("failed to save calculation", err)
	}
	return nil
}

// ListByProject returns a project's calculations, newest first.
func (s *PostgresStore) ListByProject(ctx context.Context, projectID int64) ([]CalculationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, name, voltage, load_kw, power_factor, distance,
		       recommended_cable_size, voltage_drop, power_loss, created_at
		FROM cable_calculations
		WHERE project_id = $1
		ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, errors.Storage("failed to list calculations", err)
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProjectID, &rec.Name, &rec.Voltage, &rec.LoadKW,
			&rec.PowerFactor, &rec.Distance, &rec.RecommendedSize,
			&rec.VoltageDropPercent, &rec.PowerLossWatts, &rec.CreatedAt,
		); err != nil {
			return nil, errors.Storage("failed to scan calculation", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("failed to iterate calculations", err)
	}

	return records, nil
}

// Ping verifies the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
