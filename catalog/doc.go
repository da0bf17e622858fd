// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the static set of prediction categories.

Categories are fixed at build time. Each has an ID, a display name, an icon
name, a group (outcome, player or fun) and two or more options. Option IDs
are unique within their category only: "over" in total-points and "over" in
anthem-length are different options.

	c := catalog.MustDefault()
	err := c.Check("winner", "seahawks")
	groups := c.Groups()

Check returns ErrUnknownCategory or ErrUnknownOption for anything not in
the catalog.
*/
package catalog
