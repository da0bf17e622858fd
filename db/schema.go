// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database types
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// ResultsChannel is the Postgres NOTIFY channel fired on any results write.
const ResultsChannel = "results_changed"

// DriverName maps a database type to its database/sql driver name.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// On Postgres it also installs the results change trigger.
func CreateSchema(db *sql.DB, dbType string) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if dbType == Postgres {
		if _, err := db.Exec(postgresNotify); err != nil {
			return fmt.Errorf("failed to create results trigger: %w", err)
		}
	}

	return nil
}

// Timestamps are written by the application so the same SQL runs on both
// Postgres and SQLite.
const schema = `
-- Parties
CREATE TABLE IF NOT EXISTS parties (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    invite_code TEXT NOT NULL UNIQUE,
    created_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_parties_created_by ON parties(created_by);

-- Party membership
CREATE TABLE IF NOT EXISTS party_members (
    party_id TEXT NOT NULL REFERENCES parties(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    joined_at TIMESTAMP NOT NULL,
    PRIMARY KEY (party_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_party_members_user_id ON party_members(user_id);

-- Predictions
CREATE TABLE IF NOT EXISTS predictions (
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    selection TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, category)
);

CREATE INDEX IF NOT EXISTS idx_predictions_category ON predictions(category);

-- Results
CREATE TABLE IF NOT EXISTS results (
    category TEXT PRIMARY KEY,
    selection TEXT NOT NULL,
    announced_at TIMESTAMP NOT NULL
);

-- Profiles
CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const postgresNotify = `
CREATE OR REPLACE FUNCTION notify_results_changed() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('results_changed', TG_OP);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS results_changed ON results;

CREATE TRIGGER results_changed
    AFTER INSERT OR UPDATE OR DELETE ON results
    FOR EACH STATEMENT EXECUTE FUNCTION notify_results_changed();
`
