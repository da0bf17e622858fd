// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidToken           = errors.New("invalid token")
	ErrAdminPasswordRequired  = errors.New("admin password required")
)

// Claims is the access token payload issued by the identity provider.
type Claims struct {
	Email        string       `json:"email,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	AppMetadata  AppMetadata  `json:"app_metadata"`
	jwt.RegisteredClaims
}

type UserMetadata struct {
	FullName string `json:"full_name,omitempty"`
	Name     string `json:"name,omitempty"`
}

type AppMetadata struct {
	Role string `json:"role,omitempty"`
}

// Identity is the verified caller behind a request.
type Identity struct {
	UserID   string
	Email    string
	FullName string
	Role     string
}

// FirstName derives the display name for this identity.
func (id Identity) FirstName() string {
	return DeriveFirstName(id.FullName, id.Email)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrAuthenticationRequired
	}
	return strings.TrimSpace(token), nil
}

// VerifyToken checks an HS256 access token and returns the caller's identity.
func VerifyToken(tokenString, secret string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrAuthenticationRequired
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	fullName := claims.UserMetadata.FullName
	if fullName == "" {
		fullName = claims.UserMetadata.Name
	}

	return Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		FullName: fullName,
		Role:     claims.AppMetadata.Role,
	}, nil
}

// IsAdmin reports whether the identity may announce results, either by role
// or by being listed in adminUsers.
func IsAdmin(id Identity, adminUsers []string) bool {
	if id.UserID == "" {
		return false
	}
	return id.Role == "admin" || slices.Contains(adminUsers, id.UserID)
}
