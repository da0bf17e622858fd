// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/livesync"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/scoring"
	"github.com/danielhkuo/pickparty/store"
)

type ResultsHandler struct {
	store *store.Store
	feed  *livesync.Feed
}

func NewResultsHandler(st *store.Store, feed *livesync.Feed) *ResultsHandler {
	return &ResultsHandler{store: st, feed: feed}
}

// GetResults handles GET /results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.feed.Results(r.Context())
	if err != nil {
		writeStoreError(w, "list results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// PartyLeaderboard handles GET /parties/{id}/leaderboard
// Only members may see a party's standings
func (h *ResultsHandler) PartyLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	partyID := r.PathValue("id")
	if _, err := h.store.Party(r.Context(), partyID); err != nil {
		writeStoreError(w, "party leaderboard", err)
		return
	}

	member, err := h.store.IsMember(r.Context(), partyID, user.UserID)
	if err != nil {
		writeStoreError(w, "party leaderboard", err)
		return
	}
	if !member {
		writeStoreError(w, "party leaderboard", store.ErrNotMember)
		return
	}

	scope, err := h.store.PartyMembers(r.Context(), partyID)
	if err != nil {
		writeStoreError(w, "party leaderboard", err)
		return
	}

	preds, err := h.store.PredictionsFor(r.Context(), scope)
	if err != nil {
		writeStoreError(w, "party leaderboard", err)
		return
	}

	resp, err := h.leaderboard(r.Context(), scope, preds)
	if err != nil {
		writeStoreError(w, "party leaderboard", err)
		return
	}
	resp.PartyID = partyID

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GlobalLeaderboard handles GET /leaderboard
// Everyone who has made at least one pick is ranked
func (h *ResultsHandler) GlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	preds, err := h.store.AllPredictions(r.Context())
	if err != nil {
		writeStoreError(w, "global leaderboard", err)
		return
	}

	resp, err := h.leaderboard(r.Context(), scoring.Predictors(preds), preds)
	if err != nil {
		writeStoreError(w, "global leaderboard", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *ResultsHandler) leaderboard(ctx context.Context, scope []string, preds []models.Prediction) (models.LeaderboardResponse, error) {
	results, err := h.feed.ResultsMap(ctx)
	if err != nil {
		return models.LeaderboardResponse{}, err
	}

	// Missing names fall back to the placeholder
	names, err := h.store.ProfileNames(ctx, scope)
	if err != nil {
		slog.Warn("failed to load profile names", "error", err)
		names = nil
	}

	return models.LeaderboardResponse{
		Entries: scoring.ComputeLeaderboard(scope, preds, results, names),
		Decided: len(results),
	}, nil
}
