// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/auth"
)

type identityKey struct{}

// AdminPasswordHeader carries the admin password when a hash is configured
const AdminPasswordHeader = "X-Admin-Password"

// WithIdentity stores a verified identity on the context
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// UserFromContext returns the identity set by RequireUser or RequireAdmin
func UserFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok && id.UserID != ""
}

func authenticate(w http.ResponseWriter, r *http.Request, secret string) (auth.Identity, bool) {
	token, err := auth.BearerToken(r.Header.Get("Authorization"))
	if err == nil {
		var id auth.Identity
		if id, err = auth.VerifyToken(token, secret); err == nil {
			return id, true
		}
	}

	if !errors.Is(err, auth.ErrAuthenticationRequired) {
		slog.Warn("rejected access token", "client_ip", GetClientIP(r), "error", err)
	}
	w.Header().Set("WWW-Authenticate", `Bearer realm="pickparty"`)
	ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	return auth.Identity{}, false
}

// RequireUser rejects requests without a valid Bearer token
func RequireUser(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := authenticate(w, r, secret)
		if !ok {
			return
		}
		next(w, r.WithContext(WithIdentity(r.Context(), id)))
	}
}

// RequireAdmin requires a verified admin identity and, when passwordHash is
// set, a matching X-Admin-Password header
func RequireAdmin(secret string, adminUsers []string, passwordHash string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := authenticate(w, r, secret)
		if !ok {
			return
		}

		if !auth.IsAdmin(id, adminUsers) {
			slog.Warn("admin access denied", "user_id", id.UserID, "client_ip", GetClientIP(r))
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}

		if err := auth.CheckAdminPassword(passwordHash, r.Header.Get(AdminPasswordHeader)); err != nil {
			slog.Warn("admin password rejected", "user_id", id.UserID, "client_ip", GetClientIP(r))
			ErrorResponse(w, http.StatusUnauthorized, "Invalid admin password")
			return
		}

		next(w, r.WithContext(WithIdentity(r.Context(), id)))
	}
}
