package filter

import (
	"strings"

	"rental-server/models"
)

// AmenityMode selects how the amenity stage narrows results.
type AmenityMode string

const (
	// AmenityMatch keeps listings carrying every selected amenity.
	AmenityMatch AmenityMode = "match"
	// AmenityLegacy ignores listing attributes and truncates the working set to
	// max(3, catalogSize - 2*selected), preserving order.
	AmenityLegacy AmenityMode = "legacy"
)

// ParseAmenityMode falls back to AmenityMatch for unknown values.
func ParseAmenityMode(s string) AmenityMode {
	if AmenityMode(strings.ToLower(strings.TrimSpace(s))) == AmenityLegacy {
		return AmenityLegacy
	}
	return AmenityMatch
}

// Pipeline narrows a catalog by a set of criteria. The zero value uses AmenityMatch.
type Pipeline struct {
	AmenityMode AmenityMode
}

// Apply returns the listings of catalog that satisfy c, in catalog order, and
// the number of active criterion categories. It never fails and never mutates
// its inputs.
func (p Pipeline) Apply(catalog []models.Listing, c Criteria) ([]models.Listing, int) {
	location := strings.ToLower(c.Location)
	legacy := p.AmenityMode == AmenityLegacy

	out := make([]models.Listing, 0, len(catalog))
	for _, l := range catalog {
		if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
			continue
		}
		if !isTypeAll(c.Type) && !strings.EqualFold(l.Type, c.Type) {
			continue
		}
		if !c.Price.Contains(l.Price) {
			continue
		}
		if !legacy && !hasAllAmenities(l, c.Amenities) {
			continue
		}
		if overlapsBlocked(l, c.Dates) {
			continue
		}
		out = append(out, l)
	}

	if legacy && len(c.Amenities) > 0 {
		limit := max(3, len(catalog)-2*len(c.Amenities))
		if len(out) > limit {
			out = out[:limit]
		}
	}
	return out, c.ActiveCount()
}

// Apply runs the default pipeline.
func Apply(catalog []models.Listing, c Criteria) ([]models.Listing, int) {
	return Pipeline{}.Apply(catalog, c)
}

func hasAllAmenities(l models.Listing, amenities []string) bool {
	for _, a := range amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	return true
}

// overlapsBlocked reports whether a blocked night falls in [From, To).
// Ranges with a missing or non-increasing endpoint never overlap.
func overlapsBlocked(l models.Listing, r DateRange) bool {
	if !r.IsSet() || !r.From.Before(r.To) {
		return false
	}
	for _, d := range l.UnavailableDates {
		if !d.Before(r.From) && d.Before(r.To) {
			return true
		}
	}
	return false
}
