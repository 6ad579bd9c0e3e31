package models

// SampleCatalog returns a fresh copy of the catalog shipped with the binary.
func SampleCatalog() Catalog {
	return Catalog{
		Users: []User{
			{ID: 1, Name: "Roma", Sex: SexMale},
			{ID: 2, Name: "Anna", Sex: SexFemale},
			{ID: 3, Name: "Max", Sex: SexMale},
			{ID: 4, Name: "John", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 5, Name: "Sugar", CategoryID: 1},
			{ID: 6, Name: "Banana", CategoryID: 3},
			{ID: 7, Name: "Beer", CategoryID: 2},
			{ID: 8, Name: "Socks", CategoryID: 5},
			{ID: 9, Name: "Apples", CategoryID: 3},
		},
	}
}
