// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickparty/cliparse"
	"github.com/danielhkuo/pickparty/handlers"
	"github.com/danielhkuo/pickparty/livesync"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/store"
)

func NewRouter(st *store.Store, feed *livesync.Feed, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	partyHandler := handlers.NewPartyHandler(st, cfg)
	predictionHandler := handlers.NewPredictionHandler(st)
	resultsHandler := handlers.NewResultsHandler(st, feed)
	adminHandler := handlers.NewAdminHandler(st, feed)
	profileHandler := handlers.NewProfileHandler(st)
	catalogHandler := handlers.NewCatalogHandler(st)

	user := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireUser(cfg.JWTSecret, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.JWTSecret, cfg.AdminUsers, cfg.AdminPasswordHash, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog and results (public)
	mux.HandleFunc("GET /categories", middleware.WithLogging(catalogHandler.Categories))
	mux.HandleFunc("GET /lockout", middleware.WithLogging(catalogHandler.Lockout))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/live", middleware.WithLogging(feed.ServeWS))
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(resultsHandler.GlobalLeaderboard))

	// Invite links (public, nothing is joined)
	mux.HandleFunc("GET /invites/{code}", middleware.WithLogging(partyHandler.Preview))
	mux.HandleFunc("GET /invites/{code}/qr", middleware.WithLogging(partyHandler.QRCode))

	// The caller
	mux.HandleFunc("GET /me/profile", user(profileHandler.GetProfile))
	mux.HandleFunc("PUT /me/profile", user(profileHandler.UpdateProfile))
	mux.HandleFunc("GET /me/predictions", user(predictionHandler.MyPredictions))
	mux.HandleFunc("GET /me/parties", user(partyHandler.MyParties))

	// Predictions
	mux.HandleFunc("PUT /predictions/{category}", user(predictionHandler.SubmitPick))
	mux.HandleFunc("DELETE /predictions/{category}", user(predictionHandler.DeletePick))

	// Parties
	mux.HandleFunc("POST /parties", user(partyHandler.CreateParty))
	mux.HandleFunc("POST /parties/join", user(partyHandler.JoinParty))
	mux.HandleFunc("DELETE /parties/{id}/members/me", user(partyHandler.LeaveParty))
	mux.HandleFunc("GET /parties/{id}/leaderboard", user(resultsHandler.PartyLeaderboard))

	// Admin
	mux.HandleFunc("PUT /admin/results/{category}", admin(adminHandler.AnnounceResult))
	mux.HandleFunc("DELETE /admin/results/{category}", admin(adminHandler.ClearResult))
	mux.HandleFunc("GET /admin/predictions", admin(adminHandler.Predictions))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
			return
		}
		w.Write([]byte("pickparty API v1"))
	})

	return mux
}
