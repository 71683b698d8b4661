package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/storefront/catalog-service/models"
)

// AllCategories is the category criterion that matches every product.
const AllCategories = "all"

// SortOrder selects how visible products are ordered.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortRatingDesc SortOrder = "rating-desc"
)

// ParseSortOrder maps a user supplied value onto a SortOrder. Besides the canonical names it
// accepts the storefront's selector values price-low, price-high and rating.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch s {
	case "", string(SortNone):
		return SortNone, true
	case string(SortPriceAsc), "price-low":
		return SortPriceAsc, true
	case string(SortPriceDesc), "price-high":
		return SortPriceDesc, true
	case string(SortRatingDesc), "rating":
		return SortRatingDesc, true
	}
	return SortNone, false
}

// FilterCriteria is the user's current category, search and sort selection.
type FilterCriteria struct {
	Category   string
	SearchText string
	SortOrder  SortOrder
}

// DefaultCriteria returns the selection a freshly opened listing starts with.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category:   AllCategories,
		SearchText: "",
		SortOrder:  SortNone,
	}
}

// DeriveVisibleProducts returns the products matching criteria, in display order.
//
// Category matching is exact and case-sensitive; an unknown category simply matches nothing.
// Search text matches case-insensitively anywhere in the title. Sorting is stable, so products
// that compare equal keep their input order. The input slice is never modified and the result
// is always a fresh, non-nil slice.
func DeriveVisibleProducts(products []models.Product, criteria FilterCriteria) []models.Product {
	search := strings.ToLower(criteria.SearchText)

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if criteria.Category != AllCategories && p.Category != criteria.Category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		visible = append(visible, p)
	}

	switch criteria.SortOrder {
	case SortPriceAsc:
		slices.SortStableFunc(visible, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(visible, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRatingDesc:
		slices.SortStableFunc(visible, func(a, b models.Product) int {
			return cmp.Compare(b.Rating.Rate, a.Rating.Rate)
		})
	}

	return visible
}

// DeriveCategoryOptions lists the distinct categories of products in first-seen order.
func DeriveCategoryOptions(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	options := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		options = append(options, p.Category)
	}
	return options
}
