// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/danielhkuo/pickparty/models"
)

// ComputeLeaderboard scores each scope member's predictions against the
// announced results and ranks them.
//
// Every member gets an entry, including members with no predictions.
// Predictions from users outside scope are ignored. Total counts every
// prediction, decided or not; Score counts predictions equal to the result
// for their category. names supplies display names; missing names fall
// back to models.PlaceholderName.
//
// The inputs are not modified.
func ComputeLeaderboard(scope []string, predictions []models.Prediction, results map[string]string, names map[string]string) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(scope))
	index := make(map[string]int, len(scope))

	for _, userID := range scope {
		if _, dup := index[userID]; dup {
			continue
		}
		name := names[userID]
		if name == "" {
			name = models.PlaceholderName
		}
		index[userID] = len(entries)
		entries = append(entries, models.LeaderboardEntry{UserID: userID, FirstName: name})
	}

	for _, p := range predictions {
		i, ok := index[p.UserID]
		if !ok {
			continue
		}
		entries[i].Total++
		if result, decided := results[p.Category]; decided && result == p.Selection {
			entries[i].Score++
		}
	}

	// Lexicographic order: score, then picks made, then user ID
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.UserID < b.UserID
	})

	// Competition ranking: equal (score, total) share a rank, the next
	// distinct entry skips ahead
	for i := range entries {
		if i > 0 && entries[i].Score == entries[i-1].Score && entries[i].Total == entries[i-1].Total {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}

	return entries
}

// Predictors returns the distinct users with at least one prediction, in
// first-seen order. This is the scope of the global leaderboard.
func Predictors(predictions []models.Prediction) []string {
	seen := make(map[string]bool)
	var users []string
	for _, p := range predictions {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			users = append(users, p.UserID)
		}
	}
	return users
}
