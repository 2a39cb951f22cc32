package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/booking"
	"github.com/haiderrentals/rental-api/internal/model"
	"github.com/haiderrentals/rental-api/internal/queue"
	"github.com/haiderrentals/rental-api/internal/repository"
)

// AdminHandler serves the back office: booking approval/rejection, contact
// message management and the dashboard aggregates.  All routes require the
// ADMIN role.
type AdminHandler struct {
	Bookings *repository.BookingRepo
	Messages *repository.MessageRepo
}

func NewAdminHandler(b *repository.BookingRepo, m *repository.MessageRepo) *AdminHandler {
	if b == nil || m == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: b, Messages: m}
}

// ListBookings handles GET /v1/admin/bookings, newest first.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookingResps(list))
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateBookingStatus handles PATCH /v1/admin/bookings/:id/status.  Only the
// status field ever changes after creation; the transition table decides
// which changes are legal for the ADMIN actor.  Attempts to leave CANCELLED
// are always rejected.
func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target := strings.ToUpper(strings.TrimSpace(req.Status))
	if !booking.IsValidStatus(target) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be PENDING, CONFIRMED or CANCELLED"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := booking.CanTransition(b.Status, target, booking.ActorAdmin); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}

	if err := h.Bookings.UpdateStatus(ctx, b.ID, target); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update status, please try again"})
	}

	b.Status = target
	publishBookingEvent(ctx, queue.EventBookingStatusChanged, b, booking.ActorAdmin)

	return c.JSON(http.StatusOK, newBookingResp(b))
}

// Stats is the dashboard aggregate over the current booking and message
// sets.  Revenue counts confirmed bookings only.
type Stats struct {
	Total          int    `json:"total"`
	Pending        int    `json:"pending"`
	Confirmed      int    `json:"confirmed"`
	Revenue        uint64 `json:"revenue"`
	UnreadMessages int    `json:"unread_messages"`
}

// computeStats recomputes the dashboard aggregates from full snapshots.
// The sets are small; no incremental maintenance is attempted.
func computeStats(bookings []model.Booking, messages []model.ContactMessage) Stats {
	var s Stats
	s.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case booking.StatusPending:
			s.Pending++
		case booking.StatusConfirmed:
			s.Confirmed++
			s.Revenue += uint64(b.TotalPrice)
		}
	}
	for _, m := range messages {
		if !m.Read {
			s.UnreadMessages++
		}
	}
	return s
}

// GetStats handles GET /v1/admin/stats.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	messages, err := h.Messages.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, computeStats(bookings, messages))
}

type messageResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMessages handles GET /v1/admin/messages, newest first.
func (h *AdminHandler) ListMessages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Messages.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]messageResp, 0, len(list))
	for _, m := range list {
		out = append(out, messageResp{
			ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone,
			Message: m.Message, Read: m.Read, CreatedAt: m.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// MarkMessageRead handles PATCH /v1/admin/messages/:id/read.  Idempotent.
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Messages.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMessage handles DELETE /v1/admin/messages/:id.  Permanent.
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Messages.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
