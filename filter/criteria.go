package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"rental-server/models"
)

const (
	LOCATION_QUERY_ARG  = "location"
	TYPE_QUERY_ARG      = "type"
	CHECKIN_QUERY_ARG   = "checkin"
	CHECKOUT_QUERY_ARG  = "checkout"
	PRICE_MIN_QUERY_ARG = "price_min"
	PRICE_MAX_QUERY_ARG = "price_max"
	AMENITIES_QUERY_ARG = "amenities"
)

// TypeAll is the type sentinel meaning "no type constraint".
const TypeAll = "all"

// PriceRange is an inclusive [Min, Max] nightly price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// DateRange is an optional stay; either endpoint may be unset.
type DateRange struct {
	From models.Date `json:"from"`
	To   models.Date `json:"to"`
}

// IsSet reports whether both endpoints are present.
func (r DateRange) IsSet() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Criteria is the set of user-chosen constraints. Build it with Defaults so
// Span holds the default price range used for the active-filter count.
type Criteria struct {
	Location  string     `json:"location"`
	Type      string     `json:"type"`
	Price     PriceRange `json:"price"`
	Dates     DateRange  `json:"dates"`
	Amenities []string   `json:"amenities"`
	Span      PriceRange `json:"-"`
}

// Defaults returns criteria that filter nothing out.
func Defaults(span PriceRange) Criteria {
	if span.Min > span.Max {
		span.Min, span.Max = span.Max, span.Min
	}
	return Criteria{
		Type:      TypeAll,
		Price:     span,
		Amenities: []string{},
		Span:      span,
	}
}

// Reset puts every criterion back to its default.
func (c *Criteria) Reset() {
	*c = Defaults(c.Span)
}

func (c *Criteria) SetLocation(location string) {
	c.Location = location
}

// SetType stores the type; an empty value means TypeAll.
func (c *Criteria) SetType(t string) {
	if strings.TrimSpace(t) == "" {
		t = TypeAll
	}
	c.Type = t
}

// SetPriceRange keeps lower <= upper and clamps both bounds to the default span.
func (c *Criteria) SetPriceRange(lower, upper float64) {
	if lower > upper {
		lower, upper = upper, lower
	}
	if c.Span.Max > c.Span.Min {
		lower = clamp(lower, c.Span.Min, c.Span.Max)
		upper = clamp(upper, c.Span.Min, c.Span.Max)
	}
	c.Price = PriceRange{Min: lower, Max: upper}
}

func (c *Criteria) SetDates(from, to models.Date) {
	c.Dates = DateRange{From: from, To: to}
}

// ToggleAmenity adds the amenity, or removes it when already selected.
func (c *Criteria) ToggleAmenity(amenity string) {
	amenity = strings.TrimSpace(amenity)
	if amenity == "" {
		return
	}
	for i, a := range c.Amenities {
		if strings.EqualFold(a, amenity) {
			c.Amenities = append(c.Amenities[:i:i], c.Amenities[i+1:]...)
			return
		}
	}
	c.Amenities = append(c.Amenities, amenity)
}

// ActiveCount counts the criterion categories that differ from their default.
func (c Criteria) ActiveCount() int {
	count := 0
	if c.Location != "" {
		count++
	}
	if !isTypeAll(c.Type) {
		count++
	}
	if c.Price != c.Span {
		count++
	}
	if c.Dates.IsSet() {
		count++
	}
	if len(c.Amenities) > 0 {
		count++
	}
	return count
}

// FromQuery seeds criteria from URL query parameters. Absent or malformed
// values leave the corresponding criterion at its default.
func FromQuery(vals url.Values, span PriceRange) Criteria {
	c := Defaults(span)

	if v := vals.Get(LOCATION_QUERY_ARG); v != "" {
		c.SetLocation(v)
	}
	if v := vals.Get(TYPE_QUERY_ARG); v != "" {
		c.SetType(v)
	}

	checkin, checkout := vals.Get(CHECKIN_QUERY_ARG), vals.Get(CHECKOUT_QUERY_ARG)
	if checkin != "" && checkout != "" {
		from, _ := models.ParseDate(checkin)
		to, _ := models.ParseDate(checkout)
		c.SetDates(from, to)
	}

	lower, upper := c.Price.Min, c.Price.Max
	if v, err := parseArgFloat64(vals, PRICE_MIN_QUERY_ARG); err == nil {
		lower = v
	}
	if v, err := parseArgFloat64(vals, PRICE_MAX_QUERY_ARG); err == nil {
		upper = v
	}
	c.SetPriceRange(lower, upper)

	if v := vals.Get(AMENITIES_QUERY_ARG); v != "" {
		for _, a := range strings.Split(v, ",") {
			if !c.hasAmenity(a) {
				c.ToggleAmenity(a)
			}
		}
	}
	return c
}

func (c Criteria) hasAmenity(amenity string) bool {
	amenity = strings.TrimSpace(amenity)
	for _, a := range c.Amenities {
		if strings.EqualFold(a, amenity) {
			return true
		}
	}
	return false
}

func isTypeAll(t string) bool {
	return t == "" || strings.EqualFold(t, TypeAll)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	v, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s is not a finite number", name)
	}
	return v, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
