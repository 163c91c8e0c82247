package models

// City groups catalog listings by the city part of their location.
type City struct {
	Name         string      `json:"name"`
	Listings     int         `json:"listings"`
	AveragePrice float64     `json:"average_price"`
	MinPrice     float64     `json:"min_price"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Session is the per-request view state resolved by the session middleware.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	User     string `json:"user,omitempty"`
}
