// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/pickparty/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOption   = errors.New("unknown option")
)

// Catalog is an immutable, indexed set of categories.
type Catalog struct {
	categories []models.Category
	byID       map[string]int
	options    map[string]map[string]bool
}

// New validates the categories and indexes them. The slice order is kept
// as the display order.
func New(categories []models.Category) (*Catalog, error) {
	if err := Validate(categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		categories: make([]models.Category, len(categories)),
		byID:       make(map[string]int, len(categories)),
		options:    make(map[string]map[string]bool, len(categories)),
	}
	copy(c.categories, categories)

	for i, cat := range c.categories {
		c.byID[cat.ID] = i
		opts := make(map[string]bool, len(cat.Options))
		for _, o := range cat.Options {
			opts[o.ID] = true
		}
		c.options[cat.ID] = opts
	}
	return c, nil
}

// MustDefault returns the catalog for the event. It panics if the built-in
// data is inconsistent.
func MustDefault() *Catalog {
	c, err := New(Default)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return c
}

// Validate checks that category IDs are unique, that every category has at
// least two options and that option IDs are unique within a category.
func Validate(categories []models.Category) error {
	if len(categories) == 0 {
		return errors.New("catalog is empty")
	}

	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return errors.New("category with empty id")
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		switch cat.Group {
		case models.GroupOutcome, models.GroupPlayer, models.GroupFun:
		default:
			return fmt.Errorf("category %q: unknown group %q", cat.ID, cat.Group)
		}

		if len(cat.Options) < 2 {
			return fmt.Errorf("category %q: needs at least 2 options, has %d", cat.ID, len(cat.Options))
		}

		optSeen := make(map[string]bool, len(cat.Options))
		for _, o := range cat.Options {
			if o.ID == "" {
				return fmt.Errorf("category %q: option with empty id", cat.ID)
			}
			if optSeen[o.ID] {
				return fmt.Errorf("category %q: duplicate option id %q", cat.ID, o.ID)
			}
			optSeen[o.ID] = true
		}
	}
	return nil
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (models.Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// Check reports whether option is a valid selection for category.
func (c *Catalog) Check(category, option string) error {
	opts, ok := c.options[category]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	if !opts[option] {
		return fmt.Errorf("%w: %s/%s", ErrUnknownOption, category, option)
	}
	return nil
}

// HasCategory reports whether the category exists.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.byID[category]
	return ok
}

// Groups returns the categories bucketed by group, in a fixed group order.
func (c *Catalog) Groups() []models.CategoryGroup {
	groups := []models.CategoryGroup{
		{ID: models.GroupOutcome, Title: "Game Outcome", Subtitle: "Predict the final result"},
		{ID: models.GroupPlayer, Title: "Player Props", Subtitle: "Who will shine brightest?"},
		{ID: models.GroupFun, Title: "Fun Props", Subtitle: "The wild cards"},
	}
	for i := range groups {
		groups[i].Categories = []models.Category{}
		for _, cat := range c.categories {
			if cat.Group == groups[i].ID {
				groups[i].Categories = append(groups[i].Categories, cat)
			}
		}
	}
	return groups
}
