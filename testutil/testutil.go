// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/cliparse"
	"github.com/danielhkuo/pickparty/db"
	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"
)

// TestDBURL is an in-memory SQLite database with foreign keys on.
// Each SetupTestDB call gets its own database.
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// TestJWTSecret signs tokens minted by MintToken
const TestJWTSecret = "test-jwt-secret"

// TestAdminUser is listed in GetTestConfig's admin users
const TestAdminUser = "admin-user"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// In-memory databases live and die with their connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.SQLite,
		JWTSecret:    TestJWTSecret,
		AdminUsers:   []string{TestAdminUser},
		LockoutAt:    time.Now().Add(24 * time.Hour).UTC(),
		PublicURL:    "http://localhost:3318",
	}
}

// MintToken signs an access token for userID valid for an hour.
// An empty role leaves app_metadata.role unset.
func MintToken(t *testing.T, userID, email, fullName, role string) string {
	t.Helper()

	claims := auth.Claims{
		Email:        email,
		UserMetadata: auth.UserMetadata{FullName: fullName},
		AppMetadata:  auth.AppMetadata{Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TestJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

// AuthHeaders returns a Bearer header for a plain user
func AuthHeaders(t *testing.T, userID string) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + MintToken(t, userID, userID+"@example.com", "", "")}
}

// CreateTestParty inserts a party with the given invite code and adds the
// creator as a member. Returns the party ID.
func CreateTestParty(t *testing.T, conn *sql.DB, name, code, creatorID string) string {
	t.Helper()

	partyID := "party-" + code
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO parties (id, name, invite_code, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, partyID, name, code, creatorID, now)
	if err != nil {
		t.Fatalf("Failed to create test party: %v", err)
	}

	AddTestMember(t, conn, partyID, creatorID)
	return partyID
}

// AddTestMember adds a user to a party
func AddTestMember(t *testing.T, conn *sql.DB, partyID, userID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO party_members (party_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, partyID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to add test member: %v", err)
	}
}

// AddTestPrediction stores a prediction directly, bypassing the toggle
func AddTestPrediction(t *testing.T, conn *sql.DB, userID, category, selection string) {
	t.Helper()

	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO predictions (user_id, category, selection, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`, userID, category, selection, now)
	if err != nil {
		t.Fatalf("Failed to create test prediction: %v", err)
	}
}

// AddTestResult announces a result directly
func AddTestResult(t *testing.T, conn *sql.DB, category, selection string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO results (category, selection, announced_at)
		VALUES ($1, $2, $3)
	`, category, selection, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}
}

// AddTestProfile stores a display name
func AddTestProfile(t *testing.T, conn *sql.DB, userID, firstName string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO profiles (user_id, first_name, updated_at)
		VALUES ($1, $2, $3)
	`, userID, firstName, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}
}

// CountRows returns the number of rows in table matching where
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
