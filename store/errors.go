// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/danielhkuo/pickparty/catalog"
)

var (
	ErrInvalidInviteCode       = errors.New("invalid invite code")
	ErrCodeGenerationExhausted = errors.New("invite code generation exhausted")
	ErrConstraintViolation     = errors.New("constraint violation")
	ErrTransientNetwork        = errors.New("transient network failure")

	ErrInvalidPartyName   = errors.New("party name must be 1-60 characters")
	ErrDuplicatePartyName = errors.New("you already have a party with this name")
	ErrInvalidFirstName   = errors.New("first name must be 1-40 characters")
	ErrNotMember          = errors.New("not a member of this party")
	ErrPartyNotFound      = errors.New("party not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPredictionsLocked  = errors.New("predictions are locked")

	// Aliased so callers only need the store package.
	ErrUnknownCategory = catalog.ErrUnknownCategory
	ErrUnknownOption   = catalog.ErrUnknownOption
)
