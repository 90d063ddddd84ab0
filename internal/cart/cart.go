package cart

import (
	"github.com/shopspring/decimal"

	"github.com/urbanstep/storefront-backend/internal/catalog"
)

// Item is one cart line: a snapshot of the product at add time plus the
// chosen size and quantity. A line is uniquely keyed by (product id, size);
// the same product in two sizes is two lines.
type Item struct {
	catalog.Product
	SelectedSize float64 `json:"selectedSize"`
	Quantity     int     `json:"quantity"`
}

// Summary is the cart with its derived aggregates. Totals are recomputed on
// every read; prices are the add-time snapshots, not live catalog prices.
type Summary struct {
	Items      []Item          `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Summarize derives the aggregates for a set of cart lines.
func Summarize(items []Item) Summary {
	s := Summary{Items: items, TotalPrice: decimal.Zero}
	if s.Items == nil {
		s.Items = []Item{}
	}
	for _, it := range items {
		s.TotalItems += it.Quantity
		s.TotalPrice = s.TotalPrice.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return s
}
