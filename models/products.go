package models

// Product represents a product in the catalog.
// It includes a unique ID, a display name and the ID of its category.
type Product struct {
	ID         int    `json:"id" validate:"gt=0"`
	Name       string `json:"name" validate:"required"`
	CategoryID int    `json:"categoryId" validate:"gt=0"`
}

// EnrichedProduct is a Product joined with its category and the category owner.
// Category and User point into the catalog the product was joined from, they
// are shared between every product referencing the same record.
type EnrichedProduct struct {
	Product
	Category *Category `json:"category"`
	User     *User     `json:"user"`
}
