package models

// Category labels the fixed menu sections of the storefront.
type Category string

const (
	CategoryAfrican Category = "african"
	CategoryBakery  Category = "bakery"
	CategoryDrinks  Category = "drinks"
)

// AddOn is an optional extra attached to a product definition and
// selected per cart line.
type AddOn struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"` // smallest currency unit
}

// ProductVariant overrides the base product price when selected.
type ProductVariant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
}

// Product is an immutable catalog entry, defined at startup and never
// mutated afterwards.
type Product struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Category        Category         `json:"category"`
	Price           int              `json:"price"` // smallest currency unit
	Image           string           `json:"image,omitempty"`
	Images          []string         `json:"images,omitempty"`
	Description     string           `json:"description,omitempty"`
	LongDescription string           `json:"longDescription,omitempty"`
	AddOns          []AddOn          `json:"addOns"`
	Variants        []ProductVariant `json:"variants,omitempty"`
	Featured        bool             `json:"featured,omitempty"`
	Rating          float64          `json:"rating,omitempty"`
	ReviewCount     int              `json:"reviewCount,omitempty"`
}

// CategoryLabel pairs a category id with its display name.
type CategoryLabel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
