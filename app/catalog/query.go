package catalog

import (
	"net/url"

	"github.com/mytheresa/product-categories/models"
)

// Query parameters carrying the view state.
const (
	ParamUser     = "user"
	ParamQuery    = "query"
	ParamCategory = "category"
)

// ParseViewState reads the view state from query parameters. Missing
// parameters keep their defaults. Repeated or empty category titles are
// dropped so that toggling stays symmetric.
func ParseViewState(q url.Values) models.ViewState {
	state := models.ViewState{
		Owner:  q.Get(ParamUser),
		Search: q.Get(ParamQuery),
	}
	for _, title := range q[ParamCategory] {
		if title == "" || state.IsCategorySelected(title) {
			continue
		}
		state.Categories = append(state.Categories, title)
	}
	return state
}

// EncodeViewState is the inverse of ParseViewState. Default values are omitted.
func EncodeViewState(state models.ViewState) url.Values {
	q := url.Values{}
	if state.Owner != "" {
		q.Set(ParamUser, state.Owner)
	}
	if state.Search != "" {
		q.Set(ParamQuery, state.Search)
	}
	for _, title := range state.Categories {
		q.Add(ParamCategory, title)
	}
	return q
}

// StateURL returns the page URL rendering state.
func StateURL(state models.ViewState) string {
	q := EncodeViewState(state)
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
