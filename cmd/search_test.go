package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-server/config"
	"rental-server/filter"
)

func useCatalog(t *testing.T) {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", config.RESOURCES_PATH_PREFIX, config.CATALOG_RESOURCE))
	require.NoError(t, err)
	cfg = &config.Config{CatalogPath: path, Region: config.DefaultRegion()}
	t.Cleanup(func() { cfg = nil })
}

func TestSearchFlags_Query(t *testing.T) {
	f := searchFlags{location: "Douala", priceMin: -1, priceMax: 100000, amenities: "Wi-Fi,Parking"}

	vals := f.query()

	assert.Equal(t, "Douala", vals.Get(filter.LOCATION_QUERY_ARG))
	assert.Equal(t, "100000", vals.Get(filter.PRICE_MAX_QUERY_ARG))
	assert.False(t, vals.Has(filter.PRICE_MIN_QUERY_ARG))
	assert.False(t, vals.Has(filter.TYPE_QUERY_ARG))
	assert.Equal(t, "Wi-Fi,Parking", vals.Get(filter.AMENITIES_QUERY_ARG))
}

func TestSearchFlags_Run(t *testing.T) {
	useCatalog(t)
	f := searchFlags{location: "douala", priceMin: -1, priceMax: -1, sort: "price_asc"}

	listings, c, err := f.run(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 5)
	assert.Equal(t, "4", listings[0].ID)
	assert.Equal(t, "5", listings[4].ID)
	assert.Equal(t, 1, c.ActiveCount())
}

func TestSearchFlags_RunRejectsUnknownSort(t *testing.T) {
	useCatalog(t)
	f := searchFlags{priceMin: -1, priceMax: -1, sort: "distance"}

	_, _, err := f.run(context.Background())

	assert.Error(t, err)
}
