package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-server/filter"
)

func TestSort(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		order filter.SortOrder
		want  []string
	}{
		{filter.SortCatalog, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{filter.SortPriceAsc, []string{"4", "6", "2", "3", "9", "1", "5", "8", "7"}},
		{filter.SortPriceDesc, []string{"7", "8", "5", "1", "3", "9", "2", "6", "4"}},
		{filter.SortRatingDesc, []string{"1", "7", "3", "8", "2", "9", "5", "4", "6"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			got := filter.Sort(catalog, tt.order)
			assert.Equal(t, tt.want, ids(got))
		})
	}
	assert.Equal(t, "1", catalog[0].ID, "input must not be reordered")
}

func TestParseSortOrder(t *testing.T) {
	o, ok := filter.ParseSortOrder("price_desc")
	assert.True(t, ok)
	assert.Equal(t, filter.SortPriceDesc, o)

	o, ok = filter.ParseSortOrder("distance")
	assert.False(t, ok)
	assert.Equal(t, filter.SortCatalog, o)
}
