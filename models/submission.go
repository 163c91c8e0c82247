package models

import (
	"fmt"
	"time"

	"rental-server/validator"
)

type SubmissionLocation struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type SubmissionDetails struct {
	Bedrooms  int `json:"bedrooms"`
	Beds      int `json:"beds"`
	Bathrooms int `json:"bathrooms"`
	MaxGuests int `json:"max_guests"`
}

// PropertySubmission is the add-property form payload.
type PropertySubmission struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Location    SubmissionLocation `json:"location"`
	Details     SubmissionDetails  `json:"details"`
	Price       float64            `json:"price"`
	Amenities   []string           `json:"amenities,omitempty"`
	Images      []string           `json:"images"`
}

// SubmissionReceipt acknowledges an accepted submission. The catalog is not changed.
type SubmissionReceipt struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Validate reports every invalid field at once.
func (s PropertySubmission) Validate(types, amenities []string) validator.FieldErrors {
	errs := validator.FieldErrors{}

	validator.MinLength(errs, "name", s.Name, 5, "name must be at least 5 characters")
	validator.MinLength(errs, "description", s.Description, 20, "description must be at least 20 characters")
	validator.Required(errs, "type", s.Type, "property type is required")
	if s.Type != "" {
		validator.OneOf(errs, "type", s.Type, types, "unknown property type")
	}

	validator.MinLength(errs, "location.address", s.Location.Address, 5, "address is required")
	validator.Required(errs, "location.city", s.Location.City, "city is required")
	validator.Required(errs, "location.zip_code", s.Location.ZipCode, "zip code is required")
	validator.Required(errs, "location.country", s.Location.Country, "country is required")

	validator.MinInt(errs, "details.bedrooms", s.Details.Bedrooms, 1, "at least 1 bedroom is required")
	validator.MinInt(errs, "details.beds", s.Details.Beds, 1, "at least 1 bed is required")
	validator.MinInt(errs, "details.bathrooms", s.Details.Bathrooms, 1, "at least 1 bathroom is required")
	validator.MinInt(errs, "details.max_guests", s.Details.MaxGuests, 1, "must host at least 1 guest")

	validator.MinFloat(errs, "price", s.Price, 1, "nightly price is required")

	for i, a := range s.Amenities {
		validator.OneOf(errs, fmt.Sprintf("amenities[%d]", i), a, amenities, "unknown amenity")
	}
	if len(s.Images) == 0 {
		errs.Add("images", "at least one image is required")
	}
	return errs
}
