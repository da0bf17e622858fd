// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/models"
)

// Pick actions
const (
	PickCreated = "created"
	PickUpdated = "updated"
	PickCleared = "cleared"
)

// PickOutcome describes what SubmitPick did to the stored prediction.
type PickOutcome struct {
	Action    string
	Selection string // empty when cleared
}

// SubmitPick applies a selection to the user's prediction for a category:
// no prediction inserts it, a different selection replaces it, and the
// same selection again removes it.
func (s *Store) SubmitPick(ctx context.Context, userID, category, option string) (PickOutcome, error) {
	if userID == "" {
		return PickOutcome{}, auth.ErrAuthenticationRequired
	}
	if s.Locked() {
		return PickOutcome{}, ErrPredictionsLocked
	}
	if err := s.catalog.Check(category, option); err != nil {
		return PickOutcome{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PickOutcome{}, classify(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer rollback(tx)

	var current string
	err = tx.QueryRowContext(ctx, `
		SELECT selection FROM predictions WHERE user_id = $1 AND category = $2
	`, userID, category).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return PickOutcome{}, classify(err)
	}
	exists := err == nil

	now := s.Now()
	var out PickOutcome

	switch {
	case exists && current == option:
		_, err = tx.ExecContext(ctx, `
			DELETE FROM predictions WHERE user_id = $1 AND category = $2
		`, userID, category)
		out = PickOutcome{Action: PickCleared}

	default:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO predictions (user_id, category, selection, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (user_id, category)
			DO UPDATE SET selection = excluded.selection, updated_at = excluded.updated_at
		`, userID, category, option, now)

		out.Selection = option
		out.Action = PickCreated
		if exists {
			out.Action = PickUpdated
		}
	}
	if err != nil {
		return PickOutcome{}, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return PickOutcome{}, classify(err)
	}

	slog.Info("prediction "+out.Action, "user_id", userID, "category", category, "selection", out.Selection)
	return out, nil
}

// DeletePick removes the user's prediction for a category. Deleting an
// unset prediction is not an error.
func (s *Store) DeletePick(ctx context.Context, userID, category string) error {
	if userID == "" {
		return auth.ErrAuthenticationRequired
	}
	if s.Locked() {
		return ErrPredictionsLocked
	}
	if !s.catalog.HasCategory(category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM predictions WHERE user_id = $1 AND category = $2
	`, userID, category)
	return classify(err)
}

// UserPredictions returns one user's predictions in catalog order.
func (s *Store) UserPredictions(ctx context.Context, userID string) ([]models.Prediction, error) {
	return s.queryPredictions(ctx, "user predictions", `
		SELECT user_id, category, selection, created_at, updated_at
		FROM predictions WHERE user_id = $1
		ORDER BY category
	`, userID)
}

// PredictionsFor returns the predictions of every listed user.
func (s *Store) PredictionsFor(ctx context.Context, userIDs []string) ([]models.Prediction, error) {
	if len(userIDs) == 0 {
		return []models.Prediction{}, nil
	}

	query := `
		SELECT user_id, category, selection, created_at, updated_at
		FROM predictions WHERE user_id IN (` + placeholders(1, len(userIDs)) + `)
		ORDER BY user_id, category
	`
	return s.queryPredictions(ctx, "scoped predictions", query, stringArgs(userIDs)...)
}

// AllPredictions returns every prediction, grouped by user.
func (s *Store) AllPredictions(ctx context.Context) ([]models.Prediction, error) {
	return s.queryPredictions(ctx, "all predictions", `
		SELECT user_id, category, selection, created_at, updated_at
		FROM predictions
		ORDER BY user_id, category
	`)
}

// queryPredictions scans prediction rows, skipping any that no longer
// match the catalog.
func (s *Store) queryPredictions(ctx context.Context, op, query string, args ...any) ([]models.Prediction, error) {
	preds := []models.Prediction{}
	err := s.read(ctx, op, func() error {
		preds = preds[:0]
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p models.Prediction
			if err := rows.Scan(&p.UserID, &p.Category, &p.Selection, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return err
			}
			if err := s.catalog.Check(p.Category, p.Selection); err != nil {
				slog.Warn("skipping prediction", "user_id", p.UserID, "error", err)
				continue
			}
			preds = append(preds, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return preds, nil
}

// placeholders returns "$start, $start+1, ..." for n parameters.
func placeholders(start, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(start + i))
	}
	return b.String()
}

func stringArgs(ss []string) []any {
	args := make([]any, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}
