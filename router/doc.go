// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pick Party API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, feed, cfg)

Wrap it in middleware.CORS before serving to browsers.

# Endpoints

Health:

	GET /health - OK when the database answers

Public:

	GET /categories       - Catalog grouped by outcome, player, fun
	GET /lockout          - Lockout instant and whether it passed
	GET /results          - Announced results
	GET /results/live     - Websocket of result snapshots
	GET /leaderboard      - Everyone with at least one pick
	GET /invites/{code}   - Party preview by invite code
	GET /invites/{code}/qr - Invite QR code PNG

Authenticated (Authorization: Bearer <token>):

	GET    /me/profile                - Display name
	PUT    /me/profile                - Change display name
	GET    /me/predictions            - Caller's picks
	GET    /me/parties                - Caller's parties with member counts
	PUT    /predictions/{category}    - Pick, change or clear
	DELETE /predictions/{category}    - Clear a pick
	POST   /parties                   - Create a party
	POST   /parties/join              - Join by invite code
	DELETE /parties/{id}/members/me   - Leave a party
	GET    /parties/{id}/leaderboard  - Party standings (members only)

Admin (admin token, plus X-Admin-Password when configured):

	PUT    /admin/results/{category} - Announce or correct a result
	DELETE /admin/results/{category} - Clear a result
	GET    /admin/predictions        - Every user's picks

# Handler Initialization

The router creates handler instances with dependency injection:

	partyHandler := handlers.NewPartyHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, feed)

Result writes go through the feed so live subscribers and cached reads
update together.
*/
package router
