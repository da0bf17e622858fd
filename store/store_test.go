// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/catalog"
	"github.com/danielhkuo/pickparty/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return New(conn, catalog.MustDefault(), time.Now().Add(time.Hour))
}

// fixedCodes returns a generator that yields codes in order, repeating the
// last one, and a pointer to the call count.
func fixedCodes(codes ...string) (func() (string, error), *int) {
	calls := 0
	return func() (string, error) {
		i := calls
		if i >= len(codes) {
			i = len(codes) - 1
		}
		calls++
		return codes[i], nil
	}, &calls
}

func TestCreateParty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	party, err := s.CreateParty(ctx, "  Super Bowl Crew ", "u1")
	if err != nil {
		t.Fatalf("CreateParty() error = %v", err)
	}

	if party.Name != "Super Bowl Crew" {
		t.Errorf("Expected trimmed name, got %q", party.Name)
	}
	if !auth.ValidInviteCode(party.InviteCode) {
		t.Errorf("Invalid invite code %q", party.InviteCode)
	}
	if party.CreatedBy != "u1" {
		t.Errorf("Expected creator u1, got %s", party.CreatedBy)
	}

	// Creator is a member
	if n := testutil.CountRows(t, s.db, "party_members", "party_id = $1 AND user_id = $2", party.ID, "u1"); n != 1 {
		t.Errorf("Expected creator membership, got %d rows", n)
	}
}

func TestCreatePartyValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateParty(ctx, "Crew", "u1"); err != nil {
		t.Fatalf("CreateParty() error = %v", err)
	}

	tests := []struct {
		name    string
		party   string
		creator string
		want    error
	}{
		{"empty name", "   ", "u1", ErrInvalidPartyName},
		{"too long", strings.Repeat("x", 61), "u1", ErrInvalidPartyName},
		{"duplicate name", "crew", "u1", ErrDuplicatePartyName},
		{"no user", "Other", "", auth.ErrAuthenticationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateParty(ctx, tt.party, tt.creator)
			if !errors.Is(err, tt.want) {
				t.Errorf("CreateParty() error = %v, want %v", err, tt.want)
			}
		})
	}

	// Nothing was written by the rejected calls
	if n := testutil.CountRows(t, s.db, "parties", ""); n != 1 {
		t.Errorf("Expected 1 party, got %d", n)
	}

	// Same name is fine for a different creator
	if _, err := s.CreateParty(ctx, "Crew", "u2"); err != nil {
		t.Errorf("CreateParty() for another creator error = %v", err)
	}

	// Exactly 60 characters is allowed
	if _, err := s.CreateParty(ctx, strings.Repeat("é", 60), "u1"); err != nil {
		t.Errorf("CreateParty() with 60 characters error = %v", err)
	}
}

func TestCreatePartyCodeCollisionRetry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	testutil.CreateTestParty(t, s.db, "Existing", "AAAAAA", "u0")

	gen, calls := fixedCodes("AAAAAA", "AAAAAA", "BBBBBB")
	s.GenerateCode = gen

	party, err := s.CreateParty(ctx, "Second", "u1")
	if err != nil {
		t.Fatalf("CreateParty() error = %v", err)
	}
	if party.InviteCode != "BBBBBB" {
		t.Errorf("Expected code BBBBBB, got %s", party.InviteCode)
	}
	if *calls != 3 {
		t.Errorf("Expected 3 generator calls, got %d", *calls)
	}

	// Failed attempts left nothing behind
	if n := testutil.CountRows(t, s.db, "party_members", "user_id = $1", "u1"); n != 1 {
		t.Errorf("Expected 1 membership for u1, got %d", n)
	}
}

func TestCreatePartyCodeGenerationExhausted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	testutil.CreateTestParty(t, s.db, "Existing", "AAAAAA", "u0")

	gen, calls := fixedCodes("AAAAAA")
	s.GenerateCode = gen

	_, err := s.CreateParty(ctx, "Doomed", "u1")
	if !errors.Is(err, ErrCodeGenerationExhausted) {
		t.Fatalf("Expected ErrCodeGenerationExhausted, got %v", err)
	}
	if *calls != MaxCodeAttempts {
		t.Errorf("Expected %d attempts, got %d", MaxCodeAttempts, *calls)
	}

	if n := testutil.CountRows(t, s.db, "parties", ""); n != 1 {
		t.Errorf("Expected only the existing party, got %d", n)
	}
	if n := testutil.CountRows(t, s.db, "party_members", "user_id = $1", "u1"); n != 0 {
		t.Errorf("Expected no orphaned membership, got %d", n)
	}
}

func TestJoinPartyIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	party, err := s.CreateParty(ctx, "Crew", "u1")
	if err != nil {
		t.Fatalf("CreateParty() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		joined, err := s.JoinParty(ctx, strings.ToLower(" "+party.InviteCode+" "), "u2")
		if err != nil {
			t.Fatalf("JoinParty() call %d error = %v", i+1, err)
		}
		if joined.ID != party.ID {
			t.Errorf("JoinParty() returned party %s, want %s", joined.ID, party.ID)
		}
	}

	if n := testutil.CountRows(t, s.db, "party_members", "party_id = $1 AND user_id = $2", party.ID, "u2"); n != 1 {
		t.Errorf("Expected exactly 1 membership row, got %d", n)
	}

	// Creator joining their own party is also a no-op
	if _, err := s.JoinParty(ctx, party.InviteCode, "u1"); err != nil {
		t.Errorf("JoinParty() by creator error = %v", err)
	}
	if n := testutil.CountRows(t, s.db, "party_members", "party_id = $1", party.ID); n != 2 {
		t.Errorf("Expected 2 members, got %d", n)
	}
}

func TestJoinPartyInvalidCode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	testutil.CreateTestParty(t, s.db, "Crew", "ABC234", "u1")

	for _, code := range []string{"bad-code", "", "ABC23", "ZZZZZZ"} {
		t.Run(code, func(t *testing.T) {
			_, err := s.JoinParty(ctx, code, "u2")
			if !errors.Is(err, ErrInvalidInviteCode) {
				t.Errorf("JoinParty(%q) error = %v, want ErrInvalidInviteCode", code, err)
			}
		})
	}

	if n := testutil.CountRows(t, s.db, "party_members", "user_id = $1", "u2"); n != 0 {
		t.Errorf("Expected no membership rows, got %d", n)
	}
}

func TestLeaveParty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	partyID := testutil.CreateTestParty(t, s.db, "Crew", "ABC234", "u1")
	testutil.AddTestMember(t, s.db, partyID, "u2")

	if err := s.LeaveParty(ctx, partyID, "u2"); err != nil {
		t.Fatalf("LeaveParty() error = %v", err)
	}
	// Second leave is a no-op
	if err := s.LeaveParty(ctx, partyID, "u2"); err != nil {
		t.Fatalf("LeaveParty() again error = %v", err)
	}

	member, err := s.IsMember(ctx, partyID, "u2")
	if err != nil {
		t.Fatalf("IsMember() error = %v", err)
	}
	if member {
		t.Error("u2 should no longer be a member")
	}
}

func TestListMyPartiesMemberCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p1 := testutil.CreateTestParty(t, s.db, "One", "ABC234", "u1")
	p2 := testutil.CreateTestParty(t, s.db, "Two", "DEF567", "u2")
	testutil.CreateTestParty(t, s.db, "Three", "GHJ892", "u3")

	testutil.AddTestMember(t, s.db, p1, "u2")
	testutil.AddTestMember(t, s.db, p1, "u3")
	testutil.AddTestMember(t, s.db, p2, "u4")

	parties, err := s.ListMyParties(ctx, "u2")
	if err != nil {
		t.Fatalf("ListMyParties() error = %v", err)
	}
	if len(parties) != 2 {
		t.Fatalf("Expected 2 parties, got %d", len(parties))
	}

	for _, p := range parties {
		want := testutil.CountRows(t, s.db, "party_members", "party_id = $1", p.ID)
		if p.MemberCount != want {
			t.Errorf("Party %s: MemberCount = %d, want %d", p.Name, p.MemberCount, want)
		}
	}

	none, err := s.ListMyParties(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListMyParties() error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", none)
	}
}

func TestPartyByInviteCode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	partyID := testutil.CreateTestParty(t, s.db, "Crew", "ABC234", "u1")
	testutil.AddTestMember(t, s.db, partyID, "u2")

	p, err := s.PartyByInviteCode(ctx, "abc234")
	if err != nil {
		t.Fatalf("PartyByInviteCode() error = %v", err)
	}
	if p.ID != partyID || p.MemberCount != 2 {
		t.Errorf("PartyByInviteCode() = %+v", p)
	}

	members, err := s.PartyMembers(ctx, partyID)
	if err != nil {
		t.Fatalf("PartyMembers() error = %v", err)
	}
	if len(members) != 2 {
		t.Errorf("Expected 2 members, got %v", members)
	}

	if _, err := s.Party(ctx, "missing"); !errors.Is(err, ErrPartyNotFound) {
		t.Errorf("Party(missing) error = %v", err)
	}
}
