package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/booking"
	"github.com/haiderrentals/rental-api/internal/queue"
	"github.com/haiderrentals/rental-api/internal/repository"
)

// CustomerHandler serves the signed-in customer surface: the "my bookings"
// list and self-cancellation of pending requests.  JWT authentication and
// the CUSTOMER role have already been enforced by middleware.
type CustomerHandler struct {
	Users    *repository.UserRepo
	Bookings *repository.BookingRepo
}

func NewCustomerHandler(u *repository.UserRepo, b *repository.BookingRepo) *CustomerHandler {
	if u == nil || b == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{Users: u, Bookings: b}
}

// ListMyBookings handles GET /v1/my-bookings.  It returns the customer's
// bookings newest first, including guest bookings made with the same email
// address before the account existed.
func (h *CustomerHandler) ListMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	list, err := h.Bookings.ListForCustomer(ctx, userID, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookingResps(list))
}

// CancelMyBooking handles DELETE /v1/my-bookings/:id.  A customer may only
// cancel their own booking, and only while it is still PENDING; confirmed
// bookings require calling the office so an admin cancels.  The guard lives
// here, not in the UI: the transition table rejects CONFIRMED->CANCELLED for
// the CUSTOMER actor regardless of what a client sends.
func (h *CustomerHandler) CancelMyBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	b, err := h.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Ownership: either the booking is linked to this account or it was made
	// as a guest with the account's email.
	owns := (b.UserID != nil && *b.UserID == userID) || b.Email == u.Email
	if !owns {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := booking.CanTransition(b.Status, booking.StatusCancelled, booking.ActorCustomer); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "only pending bookings can be cancelled"})
	}

	if err := h.Bookings.UpdateStatus(ctx, b.ID, booking.StatusCancelled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not cancel booking, please try again"})
	}

	b.Status = booking.StatusCancelled
	publishBookingEvent(ctx, queue.EventBookingStatusChanged, b, booking.ActorCustomer)

	return c.JSON(http.StatusOK, newBookingResp(b))
}
