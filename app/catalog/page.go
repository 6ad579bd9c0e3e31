package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mytheresa/product-categories/models"
)

//go:embed templates/page.html
var templatesFS embed.FS

type link struct {
	Label  string
	URL    string
	Active bool
}

type row struct {
	ID         int
	Name       string
	Category   string
	Owner      string
	OwnerClass string
}

type hiddenField struct {
	Name  string
	Value string
}

// pageData is everything the page template needs; all URLs are precomputed
// from the current state so the template holds no filtering logic.
type pageData struct {
	AllUsers       link
	Users          []link
	Search         string
	SearchHidden   []hiddenField
	ClearURL       string
	AllCategories  link
	Categories     []link
	ResetURL       string
	Rows           []row
	NoMatchMessage string
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/page.html")),
	}
}

// HandlePage renders the catalog screen for the state encoded in the query.
func (h *CatalogHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	state := ParseViewState(r.URL.Query())

	users, err := h.repo.GetAllUsers()
	if err != nil {
		http.Error(w, "failed to fetch users", http.StatusInternalServerError)
		return
	}

	categories, err := h.repo.GetAllCategories()
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	visible, err := h.repo.GetFilteredProducts(state.Filters())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := buildPageData(state, users, categories, visible)

	// Render into a buffer so a template failure still yields a clean 500.
	var buf bytes.Buffer
	if err := h.page.tmpl.Execute(&buf, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func buildPageData(state models.ViewState, users []models.User, categories []models.Category, visible []models.EnrichedProduct) pageData {
	data := pageData{
		AllUsers: link{
			Label:  "All",
			URL:    StateURL(state.SelectAllUsers()),
			Active: state.Owner == "",
		},
		Search: state.Search,
		AllCategories: link{
			Label:  "All",
			URL:    StateURL(state.SelectAllCategories()),
			Active: len(state.Categories) == 0,
		},
		ResetURL:       StateURL(state.Reset()),
		NoMatchMessage: "No products matching selected criteria",
	}

	for _, u := range users {
		data.Users = append(data.Users, link{
			Label:  u.Name,
			URL:    StateURL(state.SelectUser(u.Name)),
			Active: state.Owner == u.Name,
		})
	}

	if state.Owner != "" {
		data.SearchHidden = append(data.SearchHidden, hiddenField{Name: ParamUser, Value: state.Owner})
	}
	for _, title := range state.Categories {
		data.SearchHidden = append(data.SearchHidden, hiddenField{Name: ParamCategory, Value: title})
	}

	if state.Search != "" {
		data.ClearURL = StateURL(state.ClearSearch())
	}

	for _, c := range categories {
		data.Categories = append(data.Categories, link{
			Label:  c.Title,
			URL:    StateURL(state.ToggleCategory(c.Title)),
			Active: state.IsCategorySelected(c.Title),
		})
	}

	for _, p := range visible {
		data.Rows = append(data.Rows, row{
			ID:         p.ID,
			Name:       p.Name,
			Category:   CategoryLabel(p.Category),
			Owner:      p.User.Name,
			OwnerClass: OwnerClass(p.User),
		})
	}

	return data
}

// CategoryLabel formats a category cell as "<icon> - <title>".
func CategoryLabel(c *models.Category) string {
	return fmt.Sprintf("%s - %s", c.Icon, c.Title)
}

// OwnerClass returns the CSS class highlighting an owner by sex.
func OwnerClass(u *models.User) string {
	switch u.Sex {
	case models.SexMale:
		return "has-text-link"
	case models.SexFemale:
		return "has-text-danger"
	default:
		return ""
	}
}
