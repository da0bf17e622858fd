// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pick Party API.

# Handler Types

Each handler is a struct over the store, plus the results feed where live
results matter:

  - PartyHandler: Create, join, leave, list, preview and invite QR codes
  - PredictionHandler: Picks with toggle semantics
  - ResultsHandler: Announced results and leaderboards
  - AdminHandler: Announcing and clearing results, the predictions overview
  - ProfileHandler: Display names
  - CatalogHandler: Categories and the lockout instant

Handlers are created via constructor functions:

	partyHandler := handlers.NewPartyHandler(st, cfg)

# Authentication

Handlers read the caller from middleware.UserFromContext, so routes that
need a user are wrapped in middleware.RequireUser and admin routes in
middleware.RequireAdmin. The user ID always comes from the token, never
from the request body.

# Picks

	PUT /predictions/{category}  {"selection": "seahawks"}

Picking a new option sets or replaces the prediction. Picking the current
option again clears it. The response carries the action taken and the
resulting selection (null when cleared). Writes after the lockout fail
with 409.

# Leaderboards

	GET /parties/{id}/leaderboard → members only
	GET /leaderboard              → everyone with at least one pick

Scores are computed on each request from predictions and the cached
results; nothing is stored.

# Errors

Store errors map to status codes in errors.go: invalid invite codes are
404, validation failures 400, non-members 403, lockout and constraint
conflicts 409, transient database failures 503.
*/
package handlers
