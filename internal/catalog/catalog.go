package catalog

import "github.com/shopspring/decimal"

func init() {
	// prices are serialized as plain JSON numbers across the whole API
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is the closed set of product categories.
type Category string

const (
	CategorySneakers Category = "Sneakers"
	CategorySports   Category = "Sports"
	CategoryCasual   Category = "Casual"
)

// Gender is the closed set of product gender targets.
type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

// Categories lists the supported categories in display order.
var Categories = []Category{CategorySneakers, CategorySports, CategoryCasual}

// Genders lists the supported gender targets in display order.
var Genders = []Gender{GenderMen, GenderWomen, GenderUnisex}

// PlaceholderImage is served by clients when a product image fails to load.
const PlaceholderImage = "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?auto=format&fit=crop&w=800&q=60"

// Product represents a catalog record. Records are immutable once loaded;
// nothing in the service layer mutates them.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	OldPrice    *decimal.Decimal `json:"oldPrice,omitempty"`
	Category    Category         `json:"category"`
	Gender      Gender           `json:"gender"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Images      []string         `json:"images"`
	Sizes       []float64        `json:"sizes"`
	Rating      float64          `json:"rating"`
	IsNew       bool             `json:"isNew,omitempty"`
	IsSale      bool             `json:"isSale,omitempty"`
}
