package models

import (
	"slices"
	"strings"
)

// ProductFilters holds the inputs of the filter pipeline.
// A zero value field disables the corresponding filter.
type ProductFilters struct {
	// Owner keeps products whose category owner name equals it exactly.
	Owner string
	// Search keeps products whose name contains it, case-insensitively.
	Search string
	// Categories keeps products whose category title is listed.
	Categories []string
}

// IsZero reports whether no filter is active.
func (f ProductFilters) IsZero() bool {
	return f.Owner == "" && f.Search == "" && len(f.Categories) == 0
}

// FilterProducts returns the products passing every active filter, in input
// order. The input slice is never modified.
func FilterProducts(products []EnrichedProduct, filters ProductFilters) []EnrichedProduct {
	filtered := slices.Clone(products)
	search := strings.ToLower(filters.Search)

	if filters.Owner != "" {
		filtered = slices.DeleteFunc(filtered, func(p EnrichedProduct) bool {
			return p.User.Name != filters.Owner
		})
	}

	if filters.Search != "" {
		filtered = slices.DeleteFunc(filtered, func(p EnrichedProduct) bool {
			return !strings.Contains(strings.ToLower(p.Name), search)
		})
	}

	if len(filters.Categories) > 0 {
		filtered = slices.DeleteFunc(filtered, func(p EnrichedProduct) bool {
			return !slices.Contains(filters.Categories, p.Category.Title)
		})
	}

	return filtered
}
