// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

	CreatePartyRequest     POST /parties
	JoinPartyRequest       POST /parties/join
	SubmitPickRequest      PUT /predictions/{category}
	AnnounceResultRequest  PUT /admin/results/{category}
	UpdateProfileRequest   PUT /me/profile

# Domain Types

  - Category, Option: the static prediction catalog
  - Party, PartyMember, PartySummary: groups sharing a leaderboard
  - Prediction: one selection per (user, category)
  - Result: one announced selection per category
  - Profile: display name per user
  - LeaderboardEntry: computed on read, never stored

Timestamps are UTC. Scores never appear in any persisted type.
*/
package models
