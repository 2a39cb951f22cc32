// Package handler exposes the HTTP handlers: public browsing and forms,
// customer booking management, admin back office and authentication.
package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/booking"
	"github.com/haiderrentals/rental-api/internal/model"
)

// getUserID extracts the user_id placed in the context by the JWT middleware
// and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// optionalUserID parses a Bearer token from the Authorization header when
// one is present and returns the subject claim.  Booking submission is a
// public endpoint: guests book anonymously, while signed-in customers get
// the booking attached to their account.  Invalid or missing tokens simply
// yield nil rather than an error.
func optionalUserID(c echo.Context, secret string) *uint64 {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}
	raw := strings.TrimPrefix(auth, "Bearer ")
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	switch sub := claims["sub"].(type) {
	case float64:
		uid := uint64(sub)
		return &uid
	case string:
		if n, err := strconv.ParseUint(sub, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

// bookingResp is the JSON shape for a booking across all surfaces.  Dates
// are rendered as calendar dates, not timestamps.
type bookingResp struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	VehicleID   string    `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  string    `json:"pickup_date"`
	ReturnDate  string    `json:"return_date"`
	Days        int       `json:"days"`
	PricePerDay uint32    `json:"price_per_day"`
	TotalPrice  uint32    `json:"total_price"`
	WithDriver  bool      `json:"with_driver"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		VehicleID:   b.VehicleID,
		VehicleName: b.VehicleName,
		PickupDate:  b.PickupDate.Format(booking.DateLayout),
		ReturnDate:  b.ReturnDate.Format(booking.DateLayout),
		Days:        b.Days,
		PricePerDay: b.PricePerDay,
		TotalPrice:  b.TotalPrice,
		WithDriver:  b.WithDriver,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func bookingResps(bs []model.Booking) []bookingResp {
	out := make([]bookingResp, 0, len(bs))
	for _, b := range bs {
		out = append(out, newBookingResp(b))
	}
	return out
}
