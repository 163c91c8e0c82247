package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.May, 15), d)
	assert.Equal(t, "2025-05-15", d.String())

	_, err = ParseDate("15/05/2025")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	from := NewDate(2025, time.June, 15)
	to := NewDate(2025, time.June, 22)

	assert.Equal(t, 7, from.DaysUntil(to))
	assert.Equal(t, -7, to.DaysUntil(from))
	assert.True(t, from.Before(to))
	assert.True(t, to.After(from))
	assert.True(t, from.AddDays(7).Equal(to))
	assert.Equal(t, NewDate(2025, time.July, 1), NewDate(2025, time.June, 30).AddDays(1))
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	ts := time.Date(2025, time.May, 15, 0, 30, 0, 0, loc)

	assert.Equal(t, NewDate(2025, time.May, 15), DateOf(ts))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		From Date `json:"from"`
		To   Date `json:"to"`
	}

	out, err := json.Marshal(payload{From: NewDate(2025, time.May, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2025-05-15","to":null}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2025-05-20","to":""}`), &in))
	assert.Equal(t, NewDate(2025, time.May, 20), in.From)
	assert.True(t, in.To.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"from":"May 20"}`), &in))
}

func TestListing_Helpers(t *testing.T) {
	l := Listing{
		Location:         "Douala, Cameroun",
		Amenities:        []string{"Wi-Fi", "Piscine"},
		UnavailableDates: []Date{NewDate(2025, time.May, 15)},
	}

	assert.Equal(t, "Douala", l.City())
	assert.True(t, l.HasAmenity("wi-fi"))
	assert.False(t, l.HasAmenity("Parking"))
	assert.True(t, l.IsBlocked(NewDate(2025, time.May, 15)))
	assert.False(t, l.IsBlocked(NewDate(2025, time.May, 16)))
	assert.Equal(t, 1, l.GuestCapacity())
}
