// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pickparty/models"
)

// ListResults returns every announced result, ordered by category.
func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	results := []models.Result{}
	err := s.read(ctx, "results", func() error {
		results = results[:0]
		rows, err := s.db.QueryContext(ctx, `
			SELECT category, selection, announced_at
			FROM results
			ORDER BY category
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r models.Result
			if err := rows.Scan(&r.Category, &r.Selection, &r.AnnouncedAt); err != nil {
				return err
			}
			if err := s.catalog.Check(r.Category, r.Selection); err != nil {
				slog.Warn("skipping result", "error", err)
				continue
			}
			results = append(results, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// AnnounceResult sets the result for a category. Announcing again
// replaces the previous selection.
func (s *Store) AnnounceResult(ctx context.Context, category, option string) (models.Result, error) {
	if err := s.catalog.Check(category, option); err != nil {
		return models.Result{}, err
	}

	r := models.Result{Category: category, Selection: option, AnnouncedAt: s.Now()}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (category, selection, announced_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (category)
		DO UPDATE SET selection = excluded.selection, announced_at = excluded.announced_at
	`, r.Category, r.Selection, r.AnnouncedAt)
	if err != nil {
		return models.Result{}, classify(err)
	}

	return r, nil
}

// ClearResult reverts a category to undecided.
func (s *Store) ClearResult(ctx context.Context, category string) error {
	if !s.catalog.HasCategory(category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE category = $1`, category)
	if err != nil {
		return classify(err)
	}

	return nil
}
