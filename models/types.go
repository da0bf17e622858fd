package models

import "time"

// Category groups
const (
	GroupOutcome = "outcome"
	GroupPlayer  = "player"
	GroupFun     = "fun"
)

// PlaceholderName is shown for users without a readable profile
const PlaceholderName = "Player"

// Request types

type CreatePartyRequest struct {
	Name string `json:"name"`
}

type JoinPartyRequest struct {
	InviteCode string `json:"invite_code"`
}

type SubmitPickRequest struct {
	Selection string `json:"selection"`
}

type AnnounceResultRequest struct {
	Selection string `json:"selection"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
}

// Response types

type CreatePartyResponse struct {
	Party         Party  `json:"party"`
	InviteURL     string `json:"invite_url"`
	InviteMessage string `json:"invite_message"`
}

type SubmitPickResponse struct {
	Category  string  `json:"category"`
	Selection *string `json:"selection"` // nil after a toggle-off
	Action    string  `json:"action"`    // "created", "updated" or "cleared"
}

type MyPartiesResponse struct {
	Parties []PartySummary `json:"parties"`
}

type PartyPreviewResponse struct {
	Name        string `json:"name"`
	InviteCode  string `json:"invite_code"`
	MemberCount int    `json:"member_count"`
}

type LeaderboardResponse struct {
	PartyID string             `json:"party_id,omitempty"`
	Entries []LeaderboardEntry `json:"entries"`
	Decided int                `json:"decided"` // categories with an announced result
}

type LockoutResponse struct {
	LockoutAt time.Time `json:"lockout_at"`
	Locked    bool      `json:"locked"`
}

type UserPredictions struct {
	User        string       `json:"user"` // truncated user id
	Predictions []Prediction `json:"predictions"`
}

// Domain types

type Option struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Sublabel string `json:"sublabel,omitempty"`
}

type Category struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Group   string   `json:"group"`
	Options []Option `json:"options"`
}

type CategoryGroup struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Categories []Category `json:"categories"`
}

type Party struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type PartySummary struct {
	Party
	MemberCount int `json:"member_count"`
}

type PartyMember struct {
	PartyID  string    `json:"party_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type Prediction struct {
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Selection string    `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Result struct {
	Category    string    `json:"category"`
	Selection   string    `json:"selection"`
	AnnouncedAt time.Time `json:"announced_at"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeaderboardEntry struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Rank      int    `json:"rank"` // 1-indexed, shared on equal score and total
}

// ResultsMap indexes results by category.
func ResultsMap(results []Result) map[string]string {
	m := make(map[string]string, len(results))
	for _, r := range results {
		m[r.Category] = r.Selection
	}
	return m
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
