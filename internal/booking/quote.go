// Package booking contains the rental booking rules: price quoting over a
// pickup/return date pair and the booking status state machine.  The rest of
// the application (handlers, repositories) defers to this package for every
// decision about what a booking costs and which status changes are legal.
package booking

import (
	"errors"
	"time"
)

// DateLayout is the wire format for pickup and return dates.  Bookings carry
// calendar dates, not timestamps.
const DateLayout = "2006-01-02"

// ErrInvalidDateRange is returned when the return date is not strictly after
// the pickup date.  No booking may be created in that case.
var ErrInvalidDateRange = errors.New("return date must be after pickup date")

// Quote is the derived pricing for a booking.  Both fields are computed once
// at creation time; the total is a snapshot and is never recomputed when the
// vehicle's daily rate changes later.
type Quote struct {
	Days       int    // rental length in calendar days, minimum 1
	TotalPrice uint32 // Days * daily rate, in rupees
}

// ParseDate parses a calendar date in DateLayout (UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NewQuote computes the rental duration and total price for the given date
// pair and daily rate.  It fails with ErrInvalidDateRange when ret <= pickup.
// The day count is ceil(diff in days) clamped to at least 1, so a pair of
// timestamps less than a day apart still bills one full day.  The diff is
// taken over Unix seconds rather than a time.Duration, which caps out after
// a few centuries.
func NewQuote(pickup, ret time.Time, pricePerDay uint32) (Quote, error) {
	if !ret.After(pickup) {
		return Quote{}, ErrInvalidDateRange
	}
	const daySeconds = 24 * 60 * 60
	days := int((ret.Unix() - pickup.Unix() + daySeconds - 1) / daySeconds)
	if days < 1 {
		days = 1
	}
	return Quote{Days: days, TotalPrice: uint32(days) * pricePerDay}, nil
}
