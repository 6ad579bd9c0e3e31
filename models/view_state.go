package models

import "slices"

// ViewState is the mutable state of the catalog screen.
// Actions return the next state and never modify the receiver.
type ViewState struct {
	Owner      string
	Search     string
	Categories []string
}

// SelectUser activates the owner filter for name.
func (s ViewState) SelectUser(name string) ViewState {
	s.Categories = slices.Clone(s.Categories)
	s.Owner = name
	return s
}

// SelectAllUsers disables the owner filter.
func (s ViewState) SelectAllUsers() ViewState {
	return s.SelectUser("")
}

// SetSearch stores the search text verbatim.
func (s ViewState) SetSearch(text string) ViewState {
	s.Categories = slices.Clone(s.Categories)
	s.Search = text
	return s
}

// ClearSearch disables the search filter.
func (s ViewState) ClearSearch() ViewState {
	return s.SetSearch("")
}

// ToggleCategory adds title to the selection, or removes it when already selected.
func (s ViewState) ToggleCategory(title string) ViewState {
	if s.IsCategorySelected(title) {
		s.Categories = slices.DeleteFunc(slices.Clone(s.Categories), func(c string) bool {
			return c == title
		})
	} else {
		s.Categories = append(slices.Clone(s.Categories), title)
	}
	if len(s.Categories) == 0 {
		s.Categories = nil
	}
	return s
}

// SelectAllCategories clears the category selection.
func (s ViewState) SelectAllCategories() ViewState {
	s.Categories = nil
	return s
}

// Reset clears every filter.
func (s ViewState) Reset() ViewState {
	return ViewState{}
}

// IsCategorySelected reports whether title is part of the selection.
func (s ViewState) IsCategorySelected(title string) bool {
	return slices.Contains(s.Categories, title)
}

// Filters converts the state into filter pipeline inputs.
func (s ViewState) Filters() ProductFilters {
	return ProductFilters{
		Owner:      s.Owner,
		Search:     s.Search,
		Categories: slices.Clone(s.Categories),
	}
}
