// Package queue defines message payloads exchanged over the message broker
// and the background consumer that subscribes to them.
package queue

// Event names carried in BookingEvent.Event.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is published after every successful booking write: one on
// creation and one per status change.  It carries enough information for
// downstream consumers (dashboards, notification senders, analytics) to act
// without querying the primary database.  Delivery is eventually consistent
// and carries no ordering guarantee relative to the writer's response.
type BookingEvent struct {
	Event         string `json:"event"`
	BookingID     uint64 `json:"booking_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	VehicleID     string `json:"vehicle_id"`
	VehicleName   string `json:"vehicle_name"`
	PickupDate    string `json:"pickup_date"`
	ReturnDate    string `json:"return_date"`
	Days          int    `json:"days"`
	TotalPrice    uint32 `json:"total_price"`
	Status        string `json:"status"`
	Actor         string `json:"actor,omitempty"` // who drove a status change
	OccurredAt    string `json:"occurred_at"`
}
