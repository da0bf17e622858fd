// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := openSQLite(t)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, SQLite); err != nil {
			t.Fatalf("CreateSchema() pass %d error = %v", i+1, err)
		}
	}

	for _, table := range []string{"parties", "party_members", "predictions", "results", "profiles"} {
		var n int
		if err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
			t.Errorf("Table %s not queryable: %v", table, err)
		}
	}
}

func TestSQLiteErrorClassification(t *testing.T) {
	conn := openSQLite(t)
	if err := CreateSchema(conn, SQLite); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	now := time.Now().UTC()

	_, err := conn.Exec(`INSERT INTO parties (id, name, invite_code, created_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
		"p1", "Party", "ABC234", "u1", now)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Same invite code
	_, err = conn.Exec(`INSERT INTO parties (id, name, invite_code, created_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
		"p2", "Other", "ABC234", "u1", now)
	if !IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}
	if !IsConstraintViolation(err) {
		t.Errorf("Expected constraint violation, got %v", err)
	}

	// Membership for a party that does not exist
	_, err = conn.Exec(`INSERT INTO party_members (party_id, user_id, joined_at) VALUES ($1, $2, $3)`,
		"missing", "u1", now)
	if IsUniqueViolation(err) {
		t.Errorf("Foreign key failure classified as unique violation: %v", err)
	}
	if !IsConstraintViolation(err) {
		t.Errorf("Expected constraint violation for foreign key, got %v", err)
	}
}

func TestPostgresErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		constraint bool
		transient  bool
	}{
		{"unique", &pq.Error{Code: "23505"}, true, true, false},
		{"foreign key", &pq.Error{Code: "23503"}, false, true, false},
		{"wrapped unique", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true, true, false},
		{"connection failure", &pq.Error{Code: "08006"}, false, false, true},
		{"syntax", &pq.Error{Code: "42601"}, false, false, false},
		{"bad conn", driver.ErrBadConn, false, false, true},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), false, false, true},
		{"plain", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.unique {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.unique)
			}
			if got := IsConstraintViolation(tt.err); got != tt.constraint {
				t.Errorf("IsConstraintViolation() = %v, want %v", got, tt.constraint)
			}
			if got := IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient() = %v, want %v", got, tt.transient)
			}
		})
	}
}

func TestDriverName(t *testing.T) {
	if name, err := DriverName(Postgres); err != nil || name != "postgres" {
		t.Errorf("DriverName(postgres) = %q, %v", name, err)
	}
	if name, err := DriverName(SQLite); err != nil || name != "sqlite" {
		t.Errorf("DriverName(sqlite) = %q, %v", name, err)
	}
	if _, err := DriverName("mysql"); err == nil {
		t.Error("DriverName(mysql) should fail")
	}
}
