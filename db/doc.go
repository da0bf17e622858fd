// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver error classification.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
On Postgres it also installs a statement-level trigger that fires
NOTIFY results_changed on every write to results.

# Tables

  - parties: name, unique invite code, creator
  - party_members: one row per (party, user)
  - predictions: one row per (user, category)
  - results: one row per category
  - profiles: display name per user

Scores are never stored. The leaderboard is computed on read.

# Drivers

Postgres uses lib/pq. SQLite uses modernc.org/sqlite (pure Go, no cgo) and
backs the tests. All SQL uses $n placeholders, ON CONFLICT clauses and
application-supplied timestamps, which both engines accept.

# Errors

	db.IsUniqueViolation(err)      // 23505, or SQLITE_CONSTRAINT_UNIQUE/PRIMARYKEY
	db.IsConstraintViolation(err)  // class 23, or any SQLITE_CONSTRAINT
	db.IsTransient(err)            // bad conn, timeouts, class 08
*/
package db
