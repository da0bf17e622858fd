// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/testutil"
)

func TestGetResults(t *testing.T) {
	env := newTestEnv(t)
	handler := NewResultsHandler(env.store, env.feed)

	w := serve(t, handler.GetResults, "GET", "/results", nil, "", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty array before any announcement, got %q", body)
	}

	testutil.AddTestResult(t, env.db, "winner", "seahawks")
	env.feed.Invalidate()

	w = serve(t, handler.GetResults, "GET", "/results", nil, "", nil)
	var results []models.Result
	testutil.AssertJSON(t, w, &results)
	if len(results) != 1 || results[0].Category != "winner" || results[0].Selection != "seahawks" {
		t.Errorf("Unexpected results %+v", results)
	}
}

func TestPartyLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	handler := NewResultsHandler(env.store, env.feed)

	partyID := testutil.CreateTestParty(t, env.db, "Game Night", "GAME23", "u1")
	testutil.AddTestMember(t, env.db, partyID, "u2")
	testutil.AddTestProfile(t, env.db, "u1", "Ann")

	// u1: 2 picks, both right. u2: 1 pick, wrong. outsider: 2 right but not in the party
	testutil.AddTestPrediction(t, env.db, "u1", "winner", "seahawks")
	testutil.AddTestPrediction(t, env.db, "u1", "coin-toss", "heads")
	testutil.AddTestPrediction(t, env.db, "u2", "winner", "patriots")
	testutil.AddTestPrediction(t, env.db, "outsider", "winner", "seahawks")
	testutil.AddTestPrediction(t, env.db, "outsider", "coin-toss", "heads")
	testutil.AddTestResult(t, env.db, "winner", "seahawks")
	testutil.AddTestResult(t, env.db, "coin-toss", "heads")

	w := serve(t, authed(handler.PartyLeaderboard), "GET", "/parties/"+partyID+"/leaderboard", nil, "u2",
		map[string]string{"id": partyID})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	want := []models.LeaderboardEntry{
		{UserID: "u1", FirstName: "Ann", Score: 2, Total: 2, Rank: 1},
		{UserID: "u2", FirstName: models.PlaceholderName, Score: 0, Total: 1, Rank: 2},
	}
	if len(resp.Entries) != len(want) {
		t.Fatalf("Expected %d entries, got %+v", len(want), resp.Entries)
	}
	for i := range want {
		if resp.Entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], resp.Entries[i])
		}
	}
	if resp.PartyID != partyID || resp.Decided != 2 {
		t.Errorf("Unexpected party_id %q or decided %d", resp.PartyID, resp.Decided)
	}
}

func TestPartyLeaderboardAccess(t *testing.T) {
	env := newTestEnv(t)
	handler := NewResultsHandler(env.store, env.feed)
	partyID := testutil.CreateTestParty(t, env.db, "Game Night", "GAME23", "u1")

	tests := []struct {
		name           string
		userID         string
		partyID        string
		expectedStatus int
	}{
		{"member", "u1", partyID, http.StatusOK},
		{"not a member", "stranger", partyID, http.StatusForbidden},
		{"unknown party", "u1", "no-such-party", http.StatusNotFound},
		{"no token", "", partyID, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, authed(handler.PartyLeaderboard), "GET", "/parties/"+tt.partyID+"/leaderboard", nil,
				tt.userID, map[string]string{"id": tt.partyID})
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestGlobalLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	handler := NewResultsHandler(env.store, env.feed)

	testutil.AddTestPrediction(t, env.db, "u1", "winner", "seahawks")
	testutil.AddTestPrediction(t, env.db, "u2", "winner", "patriots")
	testutil.AddTestPrediction(t, env.db, "u3", "winner", "seahawks")
	testutil.AddTestResult(t, env.db, "winner", "seahawks")

	// Members who never picked are not on the global board
	testutil.CreateTestParty(t, env.db, "Quiet", "QQQ234", "lurker")

	w := serve(t, handler.GlobalLeaderboard, "GET", "/leaderboard", nil, "", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %+v", resp.Entries)
	}

	// u1 and u3 tie on score and total; ties break by user ID but share the rank
	order := []string{resp.Entries[0].UserID, resp.Entries[1].UserID, resp.Entries[2].UserID}
	if order[0] != "u1" || order[1] != "u3" || order[2] != "u2" {
		t.Errorf("Unexpected order %v", order)
	}
	if resp.Entries[0].Rank != 1 || resp.Entries[1].Rank != 1 || resp.Entries[2].Rank != 3 {
		t.Errorf("Unexpected ranks %+v", resp.Entries)
	}
	for _, e := range resp.Entries {
		if e.Score > e.Total {
			t.Errorf("score > total for %+v", e)
		}
	}
}
