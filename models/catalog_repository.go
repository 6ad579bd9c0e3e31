package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository serves the joined catalog. It is built once at startup
// and is read-only afterwards, so it is safe for concurrent use.
type CatalogRepository struct {
	users      []User
	categories []Category
	products   []EnrichedProduct
}

// NewCatalogRepository validates and joins the catalog. Any integrity
// problem is returned here so the process can refuse to start.
func NewCatalogRepository(c Catalog) (*CatalogRepository, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	users := slices.Clone(c.Users)
	categories := slices.Clone(c.Categories)

	products, err := Join(c.Products, categories, users)
	if err != nil {
		return nil, fmt.Errorf("join catalog: %w", err)
	}

	return &CatalogRepository{
		users:      users,
		categories: categories,
		products:   products,
	}, nil
}

func (r *CatalogRepository) GetAllProducts() ([]EnrichedProduct, error) {
	return slices.Clone(r.products), nil
}

func (r *CatalogRepository) GetFilteredProducts(filters ProductFilters) ([]EnrichedProduct, error) {
	return FilterProducts(r.products, filters), nil
}

func (r *CatalogRepository) GetByID(id int) (*EnrichedProduct, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	return slices.Clone(r.categories), nil
}

func (r *CatalogRepository) GetAllUsers() ([]User, error) {
	return slices.Clone(r.users), nil
}

// GetUserByID resolves a category owner. The returned user is a copy.
func (r *CatalogRepository) GetUserByID(id int) (*User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, true
		}
	}
	return nil, false
}
