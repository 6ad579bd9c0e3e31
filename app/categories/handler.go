package categories

import (
	"encoding/json"
	"net/http"

	"github.com/mytheresa/product-categories/models"
)

type CategoryResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Owner string `json:"owner"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetUserByID(id int) (*models.User, bool)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:    c.ID,
			Title: c.Title,
			Icon:  c.Icon,
		}
		if owner, ok := h.repo.GetUserByID(c.OwnerID); ok {
			response[i].Owner = owner.Name
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
