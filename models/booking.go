package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
)

// PropertyRef is the short form of a listing embedded in bookings and conversations.
type PropertyRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Location string `json:"location,omitempty"`
}

// Booking is a stay shown on the dashboard.
type Booking struct {
	ID          string      `json:"id"`
	Property    PropertyRef `json:"property"`
	CheckIn     Date        `json:"check_in"`
	CheckOut    Date        `json:"check_out"`
	Guests      int         `json:"guests"`
	TotalPrice  float64     `json:"total_price"`
	Status      string      `json:"status"`
	HasReviewed bool        `json:"has_reviewed,omitempty"`
}

// Quote is the price breakdown for a stay.
type Quote struct {
	ListingID  string  `json:"listing_id"`
	CheckIn    Date    `json:"check_in"`
	CheckOut   Date    `json:"check_out"`
	Guests     int     `json:"guests"`
	Nights     int     `json:"nights"`
	NightPrice float64 `json:"night_price"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

// Reservation acknowledges a reservation request. Nothing is booked.
type Reservation struct {
	RequestID    string    `json:"request_id"`
	Quote        Quote     `json:"quote"`
	Message      string    `json:"message"`
	GuestMessage string    `json:"guest_message,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// UserProfile is the account summary shown on the dashboard.
type UserProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar,omitempty"`
	Joined       string `json:"joined"`
	Completeness int    `json:"completeness"`
}

// HostStats summarizes the listings of the catalog.
type HostStats struct {
	Listings      int     `json:"listings"`
	AverageRating float64 `json:"average_rating"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

// Dashboard aggregates everything the host dashboard renders.
type Dashboard struct {
	Profile          UserProfile    `json:"profile"`
	UpcomingBookings []Booking      `json:"upcoming_bookings"`
	PastBookings     []Booking      `json:"past_bookings"`
	UnreadMessages   int            `json:"unread_messages"`
	RecentMessages   []Conversation `json:"recent_messages"`
	Stats            HostStats      `json:"stats"`
}

// DashboardSeed is the file layout of the profile and booking history.
type DashboardSeed struct {
	Profile  UserProfile `json:"profile"`
	Bookings []Booking   `json:"bookings"`
}
