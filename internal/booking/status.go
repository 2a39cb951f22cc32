package booking

import (
	"errors"
	"fmt"
)

// Booking status values as stored in the bookings table.  A booking starts
// PENDING and ends either CONFIRMED or CANCELLED; CANCELLED is terminal.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Actor values used when validating a status change.  Admins act through the
// back office; customers may only cancel their own pending bookings.
const (
	ActorAdmin    = "ADMIN"
	ActorCustomer = "CUSTOMER"
)

// ErrInvalidTransition is returned (wrapped) when a status change is not in
// the transition table, including any attempt to leave CANCELLED.
var ErrInvalidTransition = errors.New("invalid status transition")

// transition describes one legal status change and who may perform it.
type transition struct {
	From  string
	To    string
	Actor string
}

// validTransitions is the authoritative definition of the booking lifecycle.
var validTransitions = []transition{
	// Admin approves a booking request.
	{From: StatusPending, To: StatusConfirmed, Actor: ActorAdmin},
	// Admin rejects a pending request.
	{From: StatusPending, To: StatusCancelled, Actor: ActorAdmin},
	// Customer withdraws their own request while it is still pending.
	{From: StatusPending, To: StatusCancelled, Actor: ActorCustomer},
	// Admin cancels an already confirmed rental.  Customers cannot.
	{From: StatusConfirmed, To: StatusCancelled, Actor: ActorAdmin},
}

var transitionSet = func() map[transition]bool {
	m := make(map[transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// IsValidStatus reports whether s is one of the three booking statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CanTransition checks whether actor may move a booking from one status to
// another.  It returns nil when the change is allowed and an error wrapping
// ErrInvalidTransition otherwise.
func CanTransition(from, to, actor string) error {
	if transitionSet[transition{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s is not allowed for %s", ErrInvalidTransition, from, to, actor)
}
