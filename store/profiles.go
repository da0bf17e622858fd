// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/models"
)

// MaxFirstNameLength is counted in characters
const MaxFirstNameLength = 40

// EnsureProfile creates a profile with the derived name unless one exists.
// An existing name, derived or edited, is never overwritten.
func (s *Store) EnsureProfile(ctx context.Context, userID, firstName string) error {
	if userID == "" {
		return auth.ErrAuthenticationRequired
	}
	if strings.TrimSpace(firstName) == "" {
		firstName = models.PlaceholderName
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, first_name, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, firstName, s.Now())
	return classify(err)
}

// GetProfile returns ErrProfileNotFound for users that never made a pick
// or set a name.
func (s *Store) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var p models.Profile
	err := s.read(ctx, "profile", func() error {
		return s.db.QueryRowContext(ctx, `
			SELECT user_id, first_name, updated_at FROM profiles WHERE user_id = $1
		`, userID).Scan(&p.UserID, &p.FirstName, &p.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	return p, err
}

// UpdateProfile sets the user's display name, creating the profile if
// needed.
func (s *Store) UpdateProfile(ctx context.Context, userID, firstName string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, auth.ErrAuthenticationRequired
	}

	firstName = strings.TrimSpace(firstName)
	if firstName == "" || utf8.RuneCountInString(firstName) > MaxFirstNameLength {
		return models.Profile{}, ErrInvalidFirstName
	}

	p := models.Profile{UserID: userID, FirstName: firstName, UpdatedAt: s.Now()}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, first_name, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET first_name = excluded.first_name, updated_at = excluded.updated_at
	`, p.UserID, p.FirstName, p.UpdatedAt)
	if err != nil {
		return models.Profile{}, classify(err)
	}
	return p, nil
}

// ProfileNames maps user IDs to display names. Users without a profile are
// absent from the map.
func (s *Store) ProfileNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	query := `SELECT user_id, first_name FROM profiles WHERE user_id IN (` + placeholders(1, len(userIDs)) + `)`
	err := s.read(ctx, "profile names", func() error {
		clear(names)
		rows, err := s.db.QueryContext(ctx, query, stringArgs(userIDs)...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id, name string
			if err := rows.Scan(&id, &name); err != nil {
				return err
			}
			names[id] = name
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
