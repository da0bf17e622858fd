// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package livesync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/pickparty/models"
)

// ResultsLoader reads the authoritative results.
type ResultsLoader interface {
	ListResults(ctx context.Context) ([]models.Result, error)
}

// Feed is a read-through cache of the results table in front of a Hub.
// The cache is dropped whenever a write is confirmed or the database
// reports a change, and rebuilt from a fresh read. Every successful load
// is published, so subscribers catch up even when the refresh that
// followed a write failed and a later read did the reload.
type Feed struct {
	loader ResultsLoader
	hub    *Hub

	mu      sync.Mutex
	cached  []models.Result
	valid   bool
	version uint64
}

func NewFeed(loader ResultsLoader, hub *Hub) *Feed {
	return &Feed{loader: loader, hub: hub}
}

// Hub returns the hub snapshots are published to.
func (f *Feed) Hub() *Hub { return f.hub }

// Results returns the cached results, loading them on a miss.
func (f *Feed) Results(ctx context.Context) ([]models.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.valid {
		if _, err := f.loadLocked(ctx); err != nil {
			return nil, err
		}
	}
	return cloneResults(f.cached), nil
}

// ResultsMap is Results indexed by category.
func (f *Feed) ResultsMap(ctx context.Context) (map[string]string, error) {
	results, err := f.Results(ctx)
	if err != nil {
		return nil, err
	}
	return models.ResultsMap(results), nil
}

// Snapshot returns the current results with their version.
func (f *Feed) Snapshot(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.valid {
		if _, err := f.loadLocked(ctx); err != nil {
			return Snapshot{}, err
		}
	}
	return Snapshot{Version: f.version, Results: cloneResults(f.cached)}, nil
}

// Invalidate drops the cache without reloading.
func (f *Feed) Invalidate() {
	f.mu.Lock()
	f.valid = false
	f.mu.Unlock()
}

// Refresh reloads results and publishes the new snapshot to every
// subscriber. If the reload fails the cache stays invalid and the next
// successful read publishes instead.
func (f *Feed) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.valid = false
	_, err := f.loadLocked(ctx)
	return err
}

// loadLocked reloads the cache and publishes the result. Hub.Publish never
// blocks, so it is safe under f.mu.
func (f *Feed) loadLocked(ctx context.Context) (Snapshot, error) {
	results, err := f.loader.ListResults(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load results: %w", err)
	}

	f.cached = results
	f.valid = true
	f.version++
	snap := Snapshot{Version: f.version, Results: cloneResults(results)}

	f.hub.Publish(snap)
	slog.Debug("results snapshot published", "version", snap.Version, "results", len(snap.Results),
		"subscribers", f.hub.Subscribers())
	return snap, nil
}

func cloneResults(results []models.Result) []models.Result {
	out := make([]models.Result, len(results))
	copy(out, results)
	return out
}
