// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring computes leaderboards from predictions and results.

	entries := scoring.ComputeLeaderboard(members, predictions, results, names)

One point per prediction whose selection equals the announced result for
its category. Scores are never stored; correcting a result changes every
affected score on the next read.

# Ordering

 1. Higher score
 2. More predictions made
 3. User ID ascending

Entries with equal score and total share a rank (1, 1, 3).

# Scope

A party leaderboard is scoped to the party roster. The global leaderboard
is scoped to everyone who made at least one prediction (see Predictors).
*/
package scoring
