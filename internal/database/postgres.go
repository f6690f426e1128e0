// Package database opens the Postgres connection and applies the schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresConnection opens a connection pool and verifies it with a ping
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// schema is idempotent and safe to run on every start
const schema = `
CREATE TABLE IF NOT EXISTS trips (
	id          UUID PRIMARY KEY,
	code        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	start_date  DATE,
	end_date    DATE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS participants (
	id            UUID PRIMARY KEY,
	trip_id       UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	name          TEXT NOT NULL,
	nickname      TEXT,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	days_in_trip  INTEGER CHECK (days_in_trip IS NULL OR days_in_trip >= 1),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_participants_trip_id ON participants(trip_id);

CREATE TABLE IF NOT EXISTS payments (
	id           UUID PRIMARY KEY,
	trip_id      UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	paid_by_id   UUID NOT NULL REFERENCES participants(id),
	amount       NUMERIC(10, 2) NOT NULL CHECK (amount > 0),
	description  TEXT,
	note         TEXT,
	paid_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_payments_trip_id ON payments(trip_id);
CREATE INDEX IF NOT EXISTS idx_payments_paid_by_id ON payments(paid_by_id);
`

// Migrate creates the trips, participants and payments tables if missing
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
