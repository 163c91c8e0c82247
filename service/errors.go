package services

import "errors"

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrInvalidDates         = errors.New("invalid dates")
	ErrDatesUnavailable     = errors.New("dates unavailable")
	ErrGuestsOutOfRange     = errors.New("guest count out of range")
	ErrInvalidRadius        = errors.New("radius must be positive")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message is empty")
	ErrInvalidCatalog       = errors.New("invalid catalog")
)
