// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pickparty/catalog"
	"github.com/danielhkuo/pickparty/cliparse"
	"github.com/danielhkuo/pickparty/livesync"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/store"
	"github.com/danielhkuo/pickparty/testutil"
)

type testEnv struct {
	db    *sql.DB
	store *store.Store
	feed  *livesync.Feed
	cfg   cliparse.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	st := store.New(conn, catalog.MustDefault(), cfg.LockoutAt)

	return &testEnv{
		db:    conn,
		store: st,
		feed:  livesync.NewFeed(st, livesync.NewHub()),
		cfg:   cfg,
	}
}

// authed puts h behind the same token check the router uses
func authed(h http.HandlerFunc) http.HandlerFunc {
	return middleware.RequireUser(testutil.TestJWTSecret, h)
}

// serve runs the request through h, authenticated as userID when set
func serve(t *testing.T, h http.HandlerFunc, method, path string, body interface{}, userID string, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var headers map[string]string
	if userID != "" {
		headers = testutil.AuthHeaders(t, userID)
	}
	req := testutil.MakeRequest(method, path, body, headers)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}

	w := httptest.NewRecorder()
	h(w, req)
	return w
}
