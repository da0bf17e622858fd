// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/store"
)

type PredictionHandler struct {
	store *store.Store
}

func NewPredictionHandler(st *store.Store) *PredictionHandler {
	return &PredictionHandler{store: st}
}

// SubmitPick handles PUT /predictions/{category}
// Picking the current selection again clears it
func (h *PredictionHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	category := r.PathValue("category")
	var req models.SubmitPickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Selection == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selection is required")
		return
	}

	out, err := h.store.SubmitPick(r.Context(), user.UserID, category, req.Selection)
	if err != nil {
		writeStoreError(w, "submit pick", err)
		return
	}

	// The profile is a nicety; the pick is already saved. EnsureProfile
	// never overwrites, so a failed attempt is retried on the next pick.
	if out.Action != store.PickCleared {
		if err := h.store.EnsureProfile(r.Context(), user.UserID, user.FirstName()); err != nil {
			slog.Warn("failed to create profile", "user_id", user.UserID, "error", err)
		}
	}

	resp := models.SubmitPickResponse{Category: category, Action: out.Action}
	if out.Action != store.PickCleared {
		resp.Selection = &out.Selection
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeletePick handles DELETE /predictions/{category}
func (h *PredictionHandler) DeletePick(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.store.DeletePick(r.Context(), user.UserID, r.PathValue("category")); err != nil {
		writeStoreError(w, "delete pick", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyPredictions handles GET /me/predictions
func (h *PredictionHandler) MyPredictions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	preds, err := h.store.UserPredictions(r.Context(), user.UserID)
	if err != nil {
		writeStoreError(w, "list predictions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, preds)
}
