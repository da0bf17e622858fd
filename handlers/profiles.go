// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/store"
)

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// GetProfile handles GET /me/profile
// Users without a stored profile see the name derived from their token
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.store.GetProfile(r.Context(), user.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			slog.Warn("failed to load profile", "user_id", user.UserID, "error", err)
		}
		profile = models.Profile{UserID: user.UserID, FirstName: user.FirstName()}
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /me/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.store.UpdateProfile(r.Context(), user.UserID, req.FirstName)
	if err != nil {
		writeStoreError(w, "update profile", err)
		return
	}

	slog.Info("profile updated", "user_id", user.UserID)
	middleware.JSONResponse(w, http.StatusOK, profile)
}
