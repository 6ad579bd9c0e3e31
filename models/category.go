package models

// Category represents a product category.
// It includes a unique title, a single-glyph icon and the ID of the owning user.
type Category struct {
	ID      int    `json:"id" validate:"gt=0"`
	Title   string `json:"title" validate:"required"`
	Icon    string `json:"icon" validate:"required"`
	OwnerID int    `json:"ownerId" validate:"gt=0"`
}
