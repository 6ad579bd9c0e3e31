package models

// Sex values used by the catalog.
const (
	SexMale   = "m"
	SexFemale = "f"
)

// User represents a person owning zero or more categories.
type User struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
	Sex  string `json:"sex" validate:"oneof=m f"`
}
