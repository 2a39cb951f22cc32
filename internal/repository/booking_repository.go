package repository

import (
	"context"
	"database/sql"

	"github.com/haiderrentals/rental-api/internal/model"
)

// BookingRepo provides CRUD operations for bookings.  Bookings are never
// deleted; only the status column changes after creation.  All timestamp
// fields are stored in UTC and pickup/return dates as DATE columns.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, name, email, phone, vehicle_id, vehicle_name,
       pickup_date, return_date, days, price_per_day, total_price, with_driver,
       status, created_at, updated_at`

// Create inserts a new booking and reads the stored row back so the caller
// receives the generated ID and timestamps.  The record's derived fields
// (days, total price) must already be computed; this layer performs no
// pricing logic.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(user_id, name, email, phone, vehicle_id, vehicle_name,
		 pickup_date, return_date, days, price_per_day, total_price, with_driver, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		nullableID(b.UserID), b.Name, b.Email, b.Phone, b.VehicleID, b.VehicleName,
		b.PickupDate, b.ReturnDate, b.Days, b.PricePerDay, b.TotalPrice, b.WithDriver, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*b = stored
	return nil
}

// GetByID fetches a single booking.  ErrNotFound is returned when no row
// with the given ID exists.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrNotFound
	}
	return b, err
}

// ListAll returns every booking ordered by creation time descending.  The
// admin dashboard recomputes its aggregates from this snapshot; booking sets
// are small enough that no incremental maintenance is needed.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListForCustomer returns the bookings owned by a customer, newest first.
// Guest bookings made with the customer's email before they registered are
// included alongside rows linked by user ID.
func (r *BookingRepo) ListForCustomer(ctx context.Context, userID uint64, email string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id=? OR email=? ORDER BY created_at DESC, id DESC",
		userID, email)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// UpdateStatus sets only the status column.  Transition validity is decided
// by the booking package before this is called.  ErrNotFound is returned
// when the booking does not exist.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status=?, updated_at=UTC_TIMESTAMP() WHERE id=?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is missing or the status already had this value;
		// distinguish by probing for existence.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func nullableID(id *uint64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		b      model.Booking
		userID sql.NullInt64
	)
	err := row.Scan(&b.ID, &userID, &b.Name, &b.Email, &b.Phone,
		&b.VehicleID, &b.VehicleName, &b.PickupDate, &b.ReturnDate,
		&b.Days, &b.PricePerDay, &b.TotalPrice, &b.WithDriver,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	if userID.Valid {
		uid := uint64(userID.Int64)
		b.UserID = &uid
	}
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
