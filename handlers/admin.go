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
	"github.com/danielhkuo/pickparty/store"
)

// shortIDLength is how much of a user ID the admin overview shows
const shortIDLength = 8

type AdminHandler struct {
	store *store.Store
	feed  *livesync.Feed
}

func NewAdminHandler(st *store.Store, feed *livesync.Feed) *AdminHandler {
	return &AdminHandler{store: st, feed: feed}
}

// AnnounceResult handles PUT /admin/results/{category}
func (h *AdminHandler) AnnounceResult(w http.ResponseWriter, r *http.Request) {
	admin, _ := middleware.UserFromContext(r.Context())

	var req models.AnnounceResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Selection == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selection is required")
		return
	}

	result, err := h.store.AnnounceResult(r.Context(), r.PathValue("category"), req.Selection)
	if err != nil {
		writeStoreError(w, "announce result", err)
		return
	}

	slog.Info("result announced", "category", result.Category, "selection", result.Selection, "admin", admin.UserID)
	h.refresh(r)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// ClearResult handles DELETE /admin/results/{category}
func (h *AdminHandler) ClearResult(w http.ResponseWriter, r *http.Request) {
	admin, _ := middleware.UserFromContext(r.Context())
	category := r.PathValue("category")

	if err := h.store.ClearResult(r.Context(), category); err != nil {
		writeStoreError(w, "clear result", err)
		return
	}

	slog.Info("result cleared", "category", category, "admin", admin.UserID)
	h.refresh(r)

	w.WriteHeader(http.StatusNoContent)
}

// Predictions handles GET /admin/predictions
// Every user's picks, grouped by user with shortened IDs
func (h *AdminHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	preds, err := h.store.AllPredictions(r.Context())
	if err != nil {
		writeStoreError(w, "admin predictions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, groupByUser(preds))
}

// refresh pushes the new results to live subscribers. The write already
// succeeded, so a failed reload is only logged; the next read publishes.
// It must not stop when the admin's connection drops.
func (h *AdminHandler) refresh(r *http.Request) {
	if err := h.feed.Refresh(context.WithoutCancel(r.Context())); err != nil {
		slog.Warn("failed to refresh results feed", "error", err)
	}
}

// groupByUser expects predictions ordered by user
func groupByUser(preds []models.Prediction) []models.UserPredictions {
	groups := []models.UserPredictions{}
	for _, p := range preds {
		if n := len(groups); n > 0 && groups[n-1].Predictions[0].UserID == p.UserID {
			groups[n-1].Predictions = append(groups[n-1].Predictions, p)
			continue
		}
		groups = append(groups, models.UserPredictions{User: shortID(p.UserID), Predictions: []models.Prediction{p}})
	}
	return groups
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength] + "..."
}
