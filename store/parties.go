// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/db"
	"github.com/danielhkuo/pickparty/models"
	"github.com/google/uuid"
)

// MaxPartyNameLength is counted in characters, not bytes
const MaxPartyNameLength = 60

// CreateParty creates a party with a fresh invite code and makes the
// creator its first member. Both rows are written in one transaction.
func (s *Store) CreateParty(ctx context.Context, name, creatorID string) (models.Party, error) {
	if creatorID == "" {
		return models.Party{}, auth.ErrAuthenticationRequired
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxPartyNameLength {
		return models.Party{}, ErrInvalidPartyName
	}

	existing, err := s.partyNamesCreatedBy(ctx, creatorID)
	if err != nil {
		return models.Party{}, err
	}
	for _, n := range existing {
		if strings.EqualFold(n, name) {
			return models.Party{}, ErrDuplicatePartyName
		}
	}

	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		code, err := s.GenerateCode()
		if err != nil {
			return models.Party{}, err
		}

		party := models.Party{
			ID:         uuid.NewString(),
			Name:       name,
			InviteCode: code,
			CreatedBy:  creatorID,
			CreatedAt:  s.Now(),
		}

		collision, err := s.insertParty(ctx, party)
		if collision {
			slog.Warn("invite code collision", "attempt", attempt, "code", code)
			continue
		}
		if err != nil {
			return models.Party{}, classify(err)
		}

		slog.Info("party created", "party_id", party.ID, "creator", creatorID, "attempts", attempt)
		return party, nil
	}

	slog.Error("invite code generation exhausted", "creator", creatorID, "attempts", MaxCodeAttempts)
	return models.Party{}, ErrCodeGenerationExhausted
}

// insertParty writes the party and the creator's membership. collision is
// true when the party insert hit a unique constraint.
func (s *Store) insertParty(ctx context.Context, p models.Party) (collision bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO parties (id, name, invite_code, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Name, p.InviteCode, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return db.IsUniqueViolation(err), err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO party_members (party_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, p.ID, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return false, err
	}

	return false, tx.Commit()
}

func (s *Store) partyNamesCreatedBy(ctx context.Context, userID string) ([]string, error) {
	var names []string
	err := s.read(ctx, "party names", func() error {
		names = names[:0]
		rows, err := s.db.QueryContext(ctx, `SELECT name FROM parties WHERE created_by = $1`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n string
			if err := rows.Scan(&n); err != nil {
				return err
			}
			names = append(names, n)
		}
		return rows.Err()
	})
	return names, err
}

// JoinParty adds the user to the party with the given invite code.
// Joining a party twice returns the party without adding a second row.
func (s *Store) JoinParty(ctx context.Context, code, userID string) (models.Party, error) {
	if userID == "" {
		return models.Party{}, auth.ErrAuthenticationRequired
	}

	summary, err := s.PartyByInviteCode(ctx, code)
	if err != nil {
		return models.Party{}, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO party_members (party_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (party_id, user_id) DO NOTHING
	`, summary.ID, userID, s.Now())
	if err != nil {
		return models.Party{}, classify(err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		slog.Info("party joined", "party_id", summary.ID, "user_id", userID)
	}
	return summary.Party, nil
}

// LeaveParty removes the membership row. Leaving a party you are not in
// is not an error.
func (s *Store) LeaveParty(ctx context.Context, partyID, userID string) error {
	if userID == "" {
		return auth.ErrAuthenticationRequired
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM party_members WHERE party_id = $1 AND user_id = $2
	`, partyID, userID)
	if err != nil {
		return classify(err)
	}

	slog.Info("party left", "party_id", partyID, "user_id", userID)
	return nil
}

// PartyByInviteCode looks up a party and its member count. Malformed codes
// fail with ErrInvalidInviteCode without a query.
func (s *Store) PartyByInviteCode(ctx context.Context, code string) (models.PartySummary, error) {
	code = auth.NormalizeInviteCode(code)
	if !auth.ValidInviteCode(code) {
		return models.PartySummary{}, ErrInvalidInviteCode
	}

	var p models.PartySummary
	err := s.read(ctx, "party by code", func() error {
		return s.db.QueryRowContext(ctx, `
			SELECT p.id, p.name, p.invite_code, p.created_by, p.created_at,
			       (SELECT COUNT(*) FROM party_members m WHERE m.party_id = p.id)
			FROM parties p
			WHERE p.invite_code = $1
		`, code).Scan(&p.ID, &p.Name, &p.InviteCode, &p.CreatedBy, &p.CreatedAt, &p.MemberCount)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.PartySummary{}, ErrInvalidInviteCode
	}
	if err != nil {
		return models.PartySummary{}, err
	}
	return p, nil
}

// Party looks up a party by ID.
func (s *Store) Party(ctx context.Context, partyID string) (models.Party, error) {
	var p models.Party
	err := s.read(ctx, "party", func() error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, invite_code, created_by, created_at
			FROM parties WHERE id = $1
		`, partyID).Scan(&p.ID, &p.Name, &p.InviteCode, &p.CreatedBy, &p.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Party{}, ErrPartyNotFound
	}
	return p, err
}

// ListMyParties returns the parties the user belongs to, oldest membership
// first, each with its member count.
func (s *Store) ListMyParties(ctx context.Context, userID string) ([]models.PartySummary, error) {
	parties := []models.PartySummary{}

	err := s.read(ctx, "my parties", func() error {
		parties = parties[:0]
		rows, err := s.db.QueryContext(ctx, `
			SELECT p.id, p.name, p.invite_code, p.created_by, p.created_at
			FROM parties p
			JOIN party_members m ON m.party_id = p.id
			WHERE m.user_id = $1
			ORDER BY m.joined_at, p.id
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p models.PartySummary
			if err := rows.Scan(&p.ID, &p.Name, &p.InviteCode, &p.CreatedBy, &p.CreatedAt); err != nil {
				return err
			}
			parties = append(parties, p)
		}
		return rows.Err()
	})
	if err != nil || len(parties) == 0 {
		return parties, err
	}

	// One grouped count for the whole party set
	counts := make(map[string]int, len(parties))
	err = s.read(ctx, "member counts", func() error {
		clear(counts)
		rows, err := s.db.QueryContext(ctx, `
			SELECT party_id, COUNT(*)
			FROM party_members
			WHERE party_id IN (SELECT party_id FROM party_members WHERE user_id = $1)
			GROUP BY party_id
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			var n int
			if err := rows.Scan(&id, &n); err != nil {
				return err
			}
			counts[id] = n
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	for i := range parties {
		parties[i].MemberCount = counts[parties[i].ID]
	}
	return parties, nil
}

// PartyMembers returns the user IDs in a party, in join order.
func (s *Store) PartyMembers(ctx context.Context, partyID string) ([]string, error) {
	var members []string
	err := s.read(ctx, "party members", func() error {
		members = members[:0]
		rows, err := s.db.QueryContext(ctx, `
			SELECT user_id FROM party_members
			WHERE party_id = $1
			ORDER BY joined_at, user_id
		`, partyID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			members = append(members, id)
		}
		return rows.Err()
	})
	return members, err
}

// IsMember reports whether the user belongs to the party.
func (s *Store) IsMember(ctx context.Context, partyID, userID string) (bool, error) {
	var n int
	err := s.read(ctx, "is member", func() error {
		return s.db.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM party_members WHERE party_id = $1 AND user_id = $2
		`, partyID, userID).Scan(&n)
	})
	return n > 0, err
}
