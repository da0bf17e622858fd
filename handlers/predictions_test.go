// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/store"
	"github.com/danielhkuo/pickparty/testutil"
)

func pick(t *testing.T, h *PredictionHandler, userID, category, selection string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, authed(h.SubmitPick), "PUT", "/predictions/"+category,
		models.SubmitPickRequest{Selection: selection}, userID, map[string]string{"category": category})
}

func TestSubmitPickToggle(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)

	steps := []struct {
		selection     string
		wantAction    string
		wantSelection string // empty means cleared
	}{
		{"seahawks", store.PickCreated, "seahawks"},
		{"patriots", store.PickUpdated, "patriots"},
		{"patriots", store.PickCleared, ""},
		{"seahawks", store.PickCreated, "seahawks"},
	}

	for i, step := range steps {
		w := pick(t, handler, "u1", "winner", step.selection)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmitPickResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Action != step.wantAction {
			t.Errorf("step %d: expected action %s, got %s", i, step.wantAction, resp.Action)
		}
		if step.wantSelection == "" {
			if resp.Selection != nil {
				t.Errorf("step %d: expected null selection, got %q", i, *resp.Selection)
			}
		} else if resp.Selection == nil || *resp.Selection != step.wantSelection {
			t.Errorf("step %d: expected selection %s, got %v", i, step.wantSelection, resp.Selection)
		}

		want := 1
		if step.wantSelection == "" {
			want = 0
		}
		if n := testutil.CountRows(t, env.db, "predictions", "user_id = $1 AND category = $2", "u1", "winner"); n != want {
			t.Errorf("step %d: expected %d rows, got %d", i, want, n)
		}
	}
}

func TestSubmitPickCreatesProfile(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)

	token := testutil.MintToken(t, "u1", "jane.doe42@example.com", "", "")
	req := testutil.MakeRequest("PUT", "/predictions/winner", models.SubmitPickRequest{Selection: "seahawks"},
		map[string]string{"Authorization": "Bearer " + token})
	req.SetPathValue("category", "winner")
	w := httptest.NewRecorder()
	authed(handler.SubmitPick)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	profile, err := env.store.GetProfile(req.Context(), "u1")
	if err != nil {
		t.Fatalf("Expected profile after first pick: %v", err)
	}
	if profile.FirstName != "Jane" {
		t.Errorf("Expected derived name Jane, got %s", profile.FirstName)
	}

	// A later pick never overwrites an edited name
	if _, err := env.store.UpdateProfile(req.Context(), "u1", "JD"); err != nil {
		t.Fatal(err)
	}
	pick(t, handler, "u1", "margin", "1-3")
	profile, _ = env.store.GetProfile(req.Context(), "u1")
	if profile.FirstName != "JD" {
		t.Errorf("Expected edited name JD to survive, got %s", profile.FirstName)
	}
}

func TestSubmitPickRetriesMissingProfile(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)

	// Earlier picks saved, but the profile insert back then failed
	testutil.AddTestPrediction(t, env.db, "u1", "winner", "seahawks")

	w := pick(t, handler, "u1", "coin-toss", "heads")
	testutil.AssertStatus(t, w, http.StatusOK)
	if n := testutil.CountRows(t, env.db, "profiles", "user_id = $1", "u1"); n != 1 {
		t.Errorf("Expected profile created on a later pick, got %d rows", n)
	}

	// Changing a pick also works
	testutil.AddTestPrediction(t, env.db, "u2", "winner", "seahawks")
	w = pick(t, handler, "u2", "winner", "patriots")
	testutil.AssertStatus(t, w, http.StatusOK)
	if n := testutil.CountRows(t, env.db, "profiles", "user_id = $1", "u2"); n != 1 {
		t.Errorf("Expected profile created on a changed pick, got %d rows", n)
	}
}

func TestSubmitPickValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)

	tests := []struct {
		name           string
		userID         string
		category       string
		selection      string
		expectedStatus int
	}{
		{"unknown category", "u1", "halftime-show", "beyonce", http.StatusBadRequest},
		{"option from another category", "u1", "winner", "over", http.StatusBadRequest},
		{"empty selection", "u1", "winner", "", http.StatusBadRequest},
		{"no token", "", "winner", "seahawks", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := pick(t, handler, tt.userID, tt.category, tt.selection)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if n := testutil.CountRows(t, env.db, "predictions", ""); n != 0 {
		t.Errorf("Expected no predictions stored, got %d", n)
	}
}

func TestSubmitPickAfterLockout(t *testing.T) {
	env := newTestEnv(t)
	env.store.LockoutAt = time.Now().Add(-time.Minute)
	handler := NewPredictionHandler(env.store)

	w := pick(t, handler, "u1", "winner", "seahawks")
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = serve(t, authed(handler.DeletePick), "DELETE", "/predictions/winner", nil, "u1",
		map[string]string{"category": "winner"})
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestDeletePick(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)
	testutil.AddTestPrediction(t, env.db, "u1", "winner", "seahawks")
	testutil.AddTestPrediction(t, env.db, "u2", "winner", "seahawks")

	// Second delete is a no-op
	for i := 0; i < 2; i++ {
		w := serve(t, authed(handler.DeletePick), "DELETE", "/predictions/winner", nil, "u1",
			map[string]string{"category": "winner"})
		testutil.AssertStatus(t, w, http.StatusNoContent)
	}

	if n := testutil.CountRows(t, env.db, "predictions", "user_id = $1", "u1"); n != 0 {
		t.Errorf("Expected u1's prediction gone, got %d", n)
	}
	if n := testutil.CountRows(t, env.db, "predictions", "user_id = $1", "u2"); n != 1 {
		t.Errorf("Expected u2's prediction untouched, got %d", n)
	}
}

func TestMyPredictions(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPredictionHandler(env.store)
	testutil.AddTestPrediction(t, env.db, "u1", "winner", "seahawks")
	testutil.AddTestPrediction(t, env.db, "u1", "coin-toss", "heads")
	testutil.AddTestPrediction(t, env.db, "u2", "winner", "patriots")

	w := serve(t, authed(handler.MyPredictions), "GET", "/me/predictions", nil, "u1", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var preds []models.Prediction
	testutil.AssertJSON(t, w, &preds)

	if len(preds) != 2 {
		t.Fatalf("Expected 2 predictions, got %d", len(preds))
	}
	for _, p := range preds {
		if p.UserID != "u1" {
			t.Errorf("Got another user's prediction: %+v", p)
		}
	}
}
