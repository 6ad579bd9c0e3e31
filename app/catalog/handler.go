package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mytheresa/product-categories/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	User     User     `json:"user"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.EnrichedProduct, error)
	GetFilteredProducts(filters models.ProductFilters) ([]models.EnrichedProduct, error)
	GetByID(id int) (*models.EnrichedProduct, error)
}

// CatalogProvider is everything the catalog screen reads.
type CatalogProvider interface {
	ProductProvider
	GetAllCategories() ([]models.Category, error)
	GetAllUsers() ([]models.User, error)
}

type CatalogHandler struct {
	repo CatalogProvider
	page *pageRenderer
}

func NewCatalogHandler(r CatalogProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
		page: newPageRenderer(),
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	filters := ParseViewState(r.URL.Query()).Filters()

	res, err := h.repo.GetFilteredProducts(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total := len(res)
	start := min(offset, total)
	end := start + min(limit, total-start)

	products := make([]Product, 0, end-start)
	for _, p := range res[start:end] {
		products = append(products, toProduct(p))
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:    total,
		Products: products,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toProduct(*product)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toProduct(p models.EnrichedProduct) Product {
	return Product{
		ID:   p.ID,
		Name: p.Name,
		Category: Category{
			ID:    p.Category.ID,
			Title: p.Category.Title,
			Icon:  p.Category.Icon,
		},
		User: User{
			ID:   p.User.ID,
			Name: p.User.Name,
			Sex:  p.User.Sex,
		},
	}
}
