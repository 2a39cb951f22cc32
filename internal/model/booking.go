package model

import "time"

// Booking records a customer's rental request for a catalog vehicle.
// The vehicle name and daily rate are denormalized at creation time so
// the booking keeps its price even if the catalog changes later.  All
// fields except Status are immutable after creation.  This struct
// corresponds to a row in the `bookings` table.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – account that owns the booking (nil for guest requests).
//  Name        – customer name as entered on the form.
//  Email       – customer email.
//  Phone       – customer phone.
//  VehicleID   – catalog slug of the requested vehicle.
//  VehicleName – vehicle display name, snapshot.
//  PickupDate  – first rental day (calendar date).
//  ReturnDate  – return day, strictly after PickupDate.
//  Days        – derived rental length, minimum 1.
//  PricePerDay – daily rate snapshot in rupees.
//  TotalPrice  – Days * PricePerDay, snapshot.
//  WithDriver  – whether a driver is included.
//  Status      – PENDING, CONFIRMED or CANCELLED.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp (status changes only).
type Booking struct {
	ID          uint64    // bookings.id
	UserID      *uint64   // bookings.user_id (nullable)
	Name        string    // bookings.name
	Email       string    // bookings.email
	Phone       string    // bookings.phone
	VehicleID   string    // bookings.vehicle_id
	VehicleName string    // bookings.vehicle_name
	PickupDate  time.Time // bookings.pickup_date
	ReturnDate  time.Time // bookings.return_date
	Days        int       // bookings.days
	PricePerDay uint32    // bookings.price_per_day
	TotalPrice  uint32    // bookings.total_price
	WithDriver  bool      // bookings.with_driver
	Status      string    // bookings.status
	CreatedAt   time.Time // bookings.created_at
	UpdatedAt   time.Time // bookings.updated_at
}
