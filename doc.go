// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pick Party API server.

Pick Party is a Super Bowl prediction game. Friends create or join parties
with a six-character invite code, pick an option in each category before
kickoff, and watch a leaderboard update as an admin announces results.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:pickparty.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --jwt-secret ...

A .env file in the working directory is loaded first.

# Commands

	pickparty                 Serve the API (default)
	pickparty migrate         Create the schema and exit
	pickparty hash-password   Print a bcrypt hash for ADMIN_PASSWORD_HASH
	pickparty categories      Print the prediction catalog

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Identity provider signing secret

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_USERS: Comma-separated user IDs allowed to announce results
  - ADMIN_PASSWORD_HASH: Also require X-Admin-Password on admin routes
  - LOCKOUT_AT: RFC3339 instant picks close
  - PUBLIC_URL: Base URL for invite links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (parties, picks, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, authentication, JSON helpers
  - store: Database access for parties, predictions, results, profiles
  - scoring: Leaderboard computation
  - livesync: Results cache, websocket fan-out, Postgres change feed
  - catalog: Prediction categories and options
  - models: Request/response and domain types
  - auth: Access tokens, invite codes, admin password
  - db: Schema creation and driver error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
