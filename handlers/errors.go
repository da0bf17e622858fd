// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/store"
)

// writeStoreError maps store and auth errors to a JSON error response.
// Anything unrecognized is logged and reported as a 500.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrAuthenticationRequired):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, store.ErrInvalidInviteCode):
		middleware.ErrorResponse(w, http.StatusNotFound, "Invalid invite code")
	case errors.Is(err, store.ErrPartyNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Party not found")
	case errors.Is(err, store.ErrNotMember):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not a member of this party")
	case errors.Is(err, store.ErrPredictionsLocked):
		middleware.ErrorResponse(w, http.StatusConflict, "Predictions are locked")
	case errors.Is(err, store.ErrInvalidPartyName),
		errors.Is(err, store.ErrDuplicatePartyName),
		errors.Is(err, store.ErrInvalidFirstName),
		errors.Is(err, store.ErrUnknownCategory),
		errors.Is(err, store.ErrUnknownOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConstraintViolation):
		slog.Warn(op+" rejected by constraint", "error", err)
		middleware.ErrorResponse(w, http.StatusConflict, "Conflicting write")
	case errors.Is(err, store.ErrTransientNetwork):
		slog.Warn(op+" hit a transient failure", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, store.ErrCodeGenerationExhausted):
		slog.Error(op+" failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not generate an invite code")
	default:
		slog.Error(op+" failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// currentUser pulls the identity set by middleware.RequireUser
func currentUser(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return auth.Identity{}, false
	}
	return id, true
}
