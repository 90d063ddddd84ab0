package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Sort keys accepted by the shop view. Anything else falls back to SortNewest.
const (
	SortNewest     = "newest"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortPopularity = "popularity"
)

// SortKeys lists the supported sort keys in display order.
var SortKeys = []string{SortNewest, SortPriceLow, SortPriceHigh, SortPopularity}

// FilterParams narrows and orders the catalog. The zero value applies no
// restriction and sorts newest-first.
type FilterParams struct {
	// Gender keeps products matching the selection, plus Unisex products
	// which always pass. "" and "All" disable the filter.
	Gender string
	// Category is an exact match. "" and "All" disable the filter.
	Category string
	// SaleOnly keeps only products flagged as on sale.
	SaleOnly bool
	// MaxPrice keeps products priced at or below the bound. nil disables it.
	MaxPrice *decimal.Decimal
	// SortBy is one of SortKeys.
	SortBy string
}

// Filter applies the gender, category, sale and price predicates in order and
// then sorts the result. The input slice is never mutated.
//
// SortNewest is deliberately not a chronological sort: products carry no
// timestamp, so it is a stable bipartition placing IsNew products first while
// preserving relative order inside each half.
func Filter(products []Product, p FilterParams) []Product {
	out := make([]Product, 0, len(products))
	for _, prod := range products {
		if p.Gender != "" && p.Gender != "All" {
			if string(prod.Gender) != p.Gender && prod.Gender != GenderUnisex {
				continue
			}
		}
		if p.Category != "" && p.Category != "All" && string(prod.Category) != p.Category {
			continue
		}
		if p.SaleOnly && !prod.IsSale {
			continue
		}
		if p.MaxPrice != nil && prod.Price.GreaterThan(*p.MaxPrice) {
			continue
		}
		out = append(out, prod)
	}

	switch p.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	}

	return out
}
