// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity verification, invite codes, and display names.

# Identity

Sign-in is handled by an external identity provider. The server only
verifies the HS256 access token it issues:

	id, err := auth.VerifyToken(token, cfg.JWTSecret)

The subject claim becomes the user ID. Email, user_metadata.full_name and
app_metadata.role are carried along when present.

# Admins

	auth.IsAdmin(id, cfg.AdminUsers)
	auth.CheckAdminPassword(cfg.AdminPasswordHash, password)

Admin access needs a verified identity with the admin role (or a listed
user ID). When a bcrypt hash is configured, the X-Admin-Password header
must match it too.

# Invite Codes

Six characters from an alphabet without I, O, 0 or 1:

	code, err := auth.GenerateInviteCode()
	code = auth.NormalizeInviteCode(input)   // trim + uppercase
	ok := auth.ValidInviteCode(code)

# Display Names

	auth.DeriveFirstName("Jane Doe", "")          // "Jane"
	auth.DeriveFirstName("", "john.smith@x.com")  // "John"
	auth.DeriveFirstName("", "")                  // "Player"
*/
package auth
