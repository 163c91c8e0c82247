package filter

import (
	"sort"

	"rental-server/models"
)

const SORT_QUERY_ARG = "sort"

// SortOrder orders a filtered result. The empty order keeps catalog order.
type SortOrder string

const (
	SortCatalog    SortOrder = ""
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortRatingDesc SortOrder = "rating_desc"
)

// ParseSortOrder reports false for unknown orders.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(s); o {
	case SortCatalog, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return o, true
	}
	return SortCatalog, false
}

// Sort returns a stably ordered copy of listings.
func Sort(listings []models.Listing, order SortOrder) []models.Listing {
	out := make([]models.Listing, len(listings))
	copy(out, listings)

	var less func(i, j int) bool
	switch order {
	case SortPriceAsc:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortPriceDesc:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	case SortRatingDesc:
		less = func(i, j int) bool { return out[i].Rating > out[j].Rating }
	default:
		return out
	}
	sort.SliceStable(out, less)
	return out
}
