package filter_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rental-server/filter"
	"rental-server/models"
)

func TestDefaults(t *testing.T) {
	c := filter.Defaults(defaultSpan)

	assert.Equal(t, "", c.Location)
	assert.Equal(t, filter.TypeAll, c.Type)
	assert.Equal(t, defaultSpan, c.Price)
	assert.False(t, c.Dates.IsSet())
	assert.Empty(t, c.Amenities)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestDefaults_SwapsReversedSpan(t *testing.T) {
	c := filter.Defaults(filter.PriceRange{Min: 300000, Max: 0})

	assert.Equal(t, defaultSpan, c.Price)
	assert.Equal(t, defaultSpan, c.Span)
}

func TestSetPriceRange_KeepsLowerBelowUpperAndClamps(t *testing.T) {
	c := filter.Defaults(defaultSpan)

	c.SetPriceRange(200000, 50000)
	assert.Equal(t, filter.PriceRange{Min: 50000, Max: 200000}, c.Price)

	c.SetPriceRange(-10, 500000)
	assert.Equal(t, defaultSpan, c.Price)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestSetType_EmptyMeansAll(t *testing.T) {
	c := filter.Defaults(defaultSpan)
	c.SetType("villa")
	c.SetType("")

	assert.Equal(t, filter.TypeAll, c.Type)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestToggleAmenity(t *testing.T) {
	c := filter.Defaults(defaultSpan)

	c.ToggleAmenity("Wi-Fi")
	c.ToggleAmenity("Parking")
	c.ToggleAmenity("  ")
	assert.Equal(t, []string{"Wi-Fi", "Parking"}, c.Amenities)

	c.ToggleAmenity("wi-fi")
	assert.Equal(t, []string{"Parking"}, c.Amenities)

	c.ToggleAmenity("Parking")
	assert.Empty(t, c.Amenities)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestFromQuery(t *testing.T) {
	vals := url.Values{}
	vals.Set("location", "Douala")
	vals.Set("type", "villa")
	vals.Set("checkin", "2025-06-15")
	vals.Set("checkout", "2025-06-22")

	c := filter.FromQuery(vals, defaultSpan)

	assert.Equal(t, "Douala", c.Location)
	assert.Equal(t, "villa", c.Type)
	assert.Equal(t, models.NewDate(2025, time.June, 15), c.Dates.From)
	assert.Equal(t, models.NewDate(2025, time.June, 22), c.Dates.To)
	assert.Equal(t, defaultSpan, c.Price)
	assert.Equal(t, 3, c.ActiveCount())
}

func TestFromQuery_AbsentKeysKeepDefaults(t *testing.T) {
	c := filter.FromQuery(url.Values{}, defaultSpan)

	assert.Equal(t, filter.Defaults(defaultSpan), c)
}

func TestFromQuery_InvalidDateIsTreatedAsAbsent(t *testing.T) {
	vals := url.Values{}
	vals.Set("checkin", "2025/06/15")
	vals.Set("checkout", "2025-06-22")

	c := filter.FromQuery(vals, defaultSpan)

	assert.True(t, c.Dates.From.IsZero())
	assert.False(t, c.Dates.IsSet())
	assert.Equal(t, 0, c.ActiveCount())
}

func TestFromQuery_CheckinWithoutCheckoutIsIgnored(t *testing.T) {
	vals := url.Values{}
	vals.Set("checkin", "2025-06-15")

	c := filter.FromQuery(vals, defaultSpan)

	assert.True(t, c.Dates.From.IsZero())
}

func TestFromQuery_PriceAndAmenities(t *testing.T) {
	vals := url.Values{}
	vals.Set("price_min", "50000")
	vals.Set("price_max", "NaN")
	vals.Set("amenities", "Wi-Fi, Piscine,wi-fi,")

	c := filter.FromQuery(vals, defaultSpan)

	assert.Equal(t, filter.PriceRange{Min: 50000, Max: 300000}, c.Price)
	assert.Equal(t, []string{"Wi-Fi", "Piscine"}, c.Amenities)
	assert.Equal(t, 2, c.ActiveCount())
}

func TestFromQuery_MalformedPriceIsIgnored(t *testing.T) {
	vals := url.Values{}
	vals.Set("price_min", "cheap")
	vals.Set("price_max", "1e400")

	c := filter.FromQuery(vals, defaultSpan)

	assert.Equal(t, defaultSpan, c.Price)
}
