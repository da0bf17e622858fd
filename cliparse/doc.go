// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Under cobra, register the flags on the command and load them in RunE:

	cliparse.RegisterFlags(cmd.Flags())
	cfg, err := cliparse.Load(cmd.Flags())

Commands that only touch the database use RegisterDatabaseFlags and
LoadDatabase, which skip the secrets.

# CLI Flags

	-p, --port                 Server port (default 3318)
	-d, --database-url         Database URL
	-t, --database-type        sqlite or postgres (default sqlite)
	    --public-url           Base URL for invite links
	    --jwt-secret           Identity provider signing secret
	    --admin-users          Comma-separated admin user IDs
	    --admin-password-hash  bcrypt hash for X-Admin-Password
	    --lockout-at           RFC3339 instant predictions close

# Environment Variables

Every flag falls back to an environment variable: uppercase the flag name
and replace - with _.

	PORT                 → -p
	DATABASE_URL         → -d
	JWT_SECRET           → --jwt-secret
	ADMIN_PASSWORD_HASH  → --admin-password-hash

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded into the environment by main.

# Validation

Load returns an error if:

  - DATABASE_URL is missing
  - JWT_SECRET is missing
  - the port is outside 1-65535
  - the database type is not sqlite or postgres
  - LOCKOUT_AT is not RFC3339
*/
package cliparse
