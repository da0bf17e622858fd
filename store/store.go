// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/catalog"
	"github.com/danielhkuo/pickparty/db"
)

const (
	// MaxCodeAttempts bounds invite code generation per CreateParty call
	MaxCodeAttempts = 5

	// readRetries is the number of extra attempts for reads on transient errors
	readRetries = 2

	retryBackoff = 50 * time.Millisecond
)

// Store persists parties, predictions, results and profiles.
type Store struct {
	db      *sql.DB
	catalog *catalog.Catalog

	// LockoutAt closes prediction writes. Zero means never locked.
	LockoutAt time.Time

	// Now and GenerateCode are replaceable in tests.
	Now          func() time.Time
	GenerateCode func() (string, error)
}

func New(conn *sql.DB, cat *catalog.Catalog, lockoutAt time.Time) *Store {
	return &Store{
		db:           conn,
		catalog:      cat,
		LockoutAt:    lockoutAt,
		Now:          func() time.Time { return time.Now().UTC() },
		GenerateCode: auth.GenerateInviteCode,
	}
}

// Catalog returns the category catalog the store validates against.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

// Locked reports whether the prediction lockout has passed.
func (s *Store) Locked() bool {
	return !s.LockoutAt.IsZero() && !s.Now().Before(s.LockoutAt)
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.read(ctx, "ping", func() error {
		return s.db.PingContext(ctx)
	})
}

// read runs fn, retrying transient failures. Only for idempotent reads.
func (s *Store) read(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		err = fn()
		if err == nil || !db.IsTransient(err) || ctx.Err() != nil {
			break
		}
		slog.Warn("transient read failure, retrying", "op", op, "attempt", attempt+1, "error", err)

		select {
		case <-ctx.Done():
			return classify(ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt+1)):
		}
	}
	return classify(err)
}

// classify maps driver errors to store sentinels. Store sentinels and
// sql.ErrNoRows pass through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return err
	case db.IsConstraintViolation(err):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case db.IsTransient(err):
		return fmt.Errorf("%w: %w", ErrTransientNetwork, err)
	default:
		return err
	}
}

// rollback is deferred after BeginTx; it is a no-op once committed.
func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Warn("rollback failed", "error", err)
	}
}
