package models

import "strings"

// Coordinates is a [longitude, latitude] pair, the order map clients expect.
type Coordinates [2]float64

func (c Coordinates) Lon() float64 { return c[0] }
func (c Coordinates) Lat() float64 { return c[1] }

// Host describes who rents out a listing.
type Host struct {
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	ResponseRate int    `json:"response_rate,omitempty"`
	Joined       string `json:"joined,omitempty"`
}

// Review is a guest review shown on the listing detail.
type Review struct {
	ID      int    `json:"id"`
	User    string `json:"user"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Listing is a rentable property. Listings are loaded once from the catalog
// and never mutated at runtime.
type Listing struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Price       float64     `json:"price"`
	Rating      float64     `json:"rating"`
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Image       string      `json:"image"`

	Description      string   `json:"description,omitempty"`
	Images           []string `json:"images,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	UnavailableDates []Date   `json:"unavailable_dates,omitempty"`
	MaxGuests        int      `json:"max_guests,omitempty"`
	Bedrooms         int      `json:"bedrooms,omitempty"`
	Beds             int      `json:"beds,omitempty"`
	Bathrooms        int      `json:"bathrooms,omitempty"`
	Host             *Host    `json:"host,omitempty"`
	Reviews          []Review `json:"reviews,omitempty"`
}

// City is the part of the location before the first comma ("Douala, Cameroun" -> "Douala").
func (l Listing) City() string {
	city, _, _ := strings.Cut(l.Location, ",")
	return strings.TrimSpace(city)
}

// HasAmenity reports whether the listing carries the amenity label, ignoring case.
func (l Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// IsBlocked reports whether d is on the listing's unavailable-date blocklist.
func (l Listing) IsBlocked(d Date) bool {
	for _, u := range l.UnavailableDates {
		if u.Equal(d) {
			return true
		}
	}
	return false
}

// GuestCapacity falls back to a single guest for catalog entries without a capacity.
func (l Listing) GuestCapacity() int {
	if l.MaxGuests <= 0 {
		return 1
	}
	return l.MaxGuests
}
