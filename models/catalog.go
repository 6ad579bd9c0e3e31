package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownCategory is returned when a product references a missing category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownOwner is returned when a category references a missing user.
	ErrUnknownOwner = errors.New("unknown owner")
	// ErrDuplicateID is returned when two records of the same kind share an ID.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrDuplicateTitle is returned when two categories share a title.
	ErrDuplicateTitle = errors.New("duplicate category title")
)

var catalogValidate = validator.New()

// IntegrityError describes a reference that does not resolve during the join.
type IntegrityError struct {
	Entity string
	ID     int
	Ref    string
	RefID  int
	Err    error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %d: %s %d: %v", e.Entity, e.ID, e.Ref, e.RefID, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Catalog is the static reference data the screen is built from.
type Catalog struct {
	Users      []User     `validate:"dive"`
	Categories []Category `validate:"dive"`
	Products   []Product  `validate:"dive"`
}

// Validate checks field constraints and uniqueness of IDs and category titles.
// Cross references are checked by Join.
func (c *Catalog) Validate() error {
	if err := catalogValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	userIDs := make(map[int]struct{}, len(c.Users))
	for _, u := range c.Users {
		if _, ok := userIDs[u.ID]; ok {
			return fmt.Errorf("user %d: %w", u.ID, ErrDuplicateID)
		}
		userIDs[u.ID] = struct{}{}
	}

	categoryIDs := make(map[int]struct{}, len(c.Categories))
	titles := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if _, ok := categoryIDs[cat.ID]; ok {
			return fmt.Errorf("category %d: %w", cat.ID, ErrDuplicateID)
		}
		categoryIDs[cat.ID] = struct{}{}
		if _, ok := titles[cat.Title]; ok {
			return fmt.Errorf("category %q: %w", cat.Title, ErrDuplicateTitle)
		}
		titles[cat.Title] = struct{}{}
	}

	productIDs := make(map[int]struct{}, len(c.Products))
	for _, p := range c.Products {
		if _, ok := productIDs[p.ID]; ok {
			return fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID)
		}
		productIDs[p.ID] = struct{}{}
	}

	return nil
}

// Join attaches to every product its category and the user owning that
// category. Output order equals input order. The returned products point into
// categories and users, so the slices must outlive the result.
func Join(products []Product, categories []Category, users []User) ([]EnrichedProduct, error) {
	usersByID := make(map[int]*User, len(users))
	for i := range users {
		if _, ok := usersByID[users[i].ID]; !ok {
			usersByID[users[i].ID] = &users[i]
		}
	}

	categoriesByID := make(map[int]*Category, len(categories))
	for i := range categories {
		if _, ok := categoriesByID[categories[i].ID]; !ok {
			categoriesByID[categories[i].ID] = &categories[i]
		}
	}

	enriched := make([]EnrichedProduct, len(products))
	for i, p := range products {
		category, ok := categoriesByID[p.CategoryID]
		if !ok {
			return nil, &IntegrityError{Entity: "product", ID: p.ID, Ref: "category", RefID: p.CategoryID, Err: ErrUnknownCategory}
		}
		user, ok := usersByID[category.OwnerID]
		if !ok {
			return nil, &IntegrityError{Entity: "category", ID: category.ID, Ref: "owner", RefID: category.OwnerID, Err: ErrUnknownOwner}
		}
		enriched[i] = EnrichedProduct{Product: p, Category: category, User: user}
	}

	return enriched, nil
}
