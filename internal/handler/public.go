package handler

import (
	"context"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/booking"
	"github.com/haiderrentals/rental-api/internal/config"
	"github.com/haiderrentals/rental-api/internal/fleet"
	"github.com/haiderrentals/rental-api/internal/model"
	"github.com/haiderrentals/rental-api/internal/queue"
	"github.com/haiderrentals/rental-api/internal/repository"
	queue_publisher "github.com/haiderrentals/rental-api/internal/service"
)

// PublicHandler serves the unauthenticated surface: the fleet catalog, the
// booking request form and the contact form.  Booking submission accepts an
// optional bearer token so signed-in customers get the booking linked to
// their account.
type PublicHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
	Messages *repository.MessageRepo
}

func NewPublicHandler(cfg config.Config, b *repository.BookingRepo, m *repository.MessageRepo) *PublicHandler {
	return &PublicHandler{Cfg: cfg, Bookings: b, Messages: m}
}

// ListFleet handles GET /v1/fleet.  Optional query parameters narrow the
// catalog: type (category label, "All" for no filter), max_price (inclusive
// daily-rate cap) and seats ("5" or "7+").  Results keep the catalog order.
func (h *PublicHandler) ListFleet(c echo.Context) error {
	vehicleType := strings.TrimSpace(c.QueryParam("type"))

	var maxPrice uint32
	if raw := strings.TrimSpace(c.QueryParam("max_price")); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		maxPrice = uint32(n)
	}

	seats, ok := fleet.ParseSeatMode(strings.TrimSpace(c.QueryParam("seats")))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seats filter, use 5 or 7+"})
	}

	return c.JSON(http.StatusOK, fleet.Filter(fleet.All(), vehicleType, maxPrice, seats))
}

// GetVehicle handles GET /v1/fleet/:id.
func (h *PublicHandler) GetVehicle(c echo.Context) error {
	v, ok := fleet.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
	}
	return c.JSON(http.StatusOK, v)
}

type bookingReq struct {
	VehicleID  string `json:"vehicle_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
	WithDriver bool   `json:"with_driver"`
}

// CreateBooking handles POST /v1/bookings.  Validation failures block the
// submission and persist nothing.  Deliberately absent: any availability or
// overlap check against other bookings for the same vehicle.  Every request
// is an independent PENDING record and conflicts are resolved manually by
// the admin.  A failed write surfaces as a generic error; resubmitting
// creates a second independent record.
func (h *PublicHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and phone are required"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}

	v, ok := fleet.GetByID(req.VehicleID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
	}
	if !v.Available {
		return c.JSON(http.StatusConflict, echo.Map{"error": "vehicle is not available"})
	}

	pickup, err := booking.ParseDate(req.PickupDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pickup_date, use YYYY-MM-DD"})
	}
	ret, err := booking.ParseDate(req.ReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid return_date, use YYYY-MM-DD"})
	}

	quote, err := booking.NewQuote(pickup, ret, v.PricePerDay)
	if err != nil {
		// Only ErrInvalidDateRange can come back here.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "return date must be after pickup date"})
	}

	b := model.Booking{
		UserID:      optionalUserID(c, h.Cfg.JWTSecret),
		Name:        req.Name,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		VehicleID:   v.ID,
		VehicleName: v.Name,
		PickupDate:  pickup,
		ReturnDate:  ret,
		Days:        quote.Days,
		PricePerDay: v.PricePerDay,
		TotalPrice:  quote.TotalPrice,
		WithDriver:  req.WithDriver,
		Status:      booking.StatusPending,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save booking, please try again"})
	}

	publishBookingEvent(ctx, queue.EventBookingCreated, b, "")

	return c.JSON(http.StatusCreated, newBookingResp(b))
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CreateMessage handles POST /v1/contact.  All four fields are required.
func (h *PublicHandler) CreateMessage(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, phone and message are required"})
	}

	m := model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Messages.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not send message, please try again"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": m.ID, "created_at": m.CreatedAt})
}

// publishBookingEvent fans a lifecycle event out to the message queue.  The
// write has already been committed; publish failures are logged inside the
// publisher and deliberately ignored here.
func publishBookingEvent(ctx context.Context, event string, b model.Booking, actor string) {
	_ = queue_publisher.PublishBookingEvent(ctx, queue.BookingEvent{
		Event:         event,
		BookingID:     b.ID,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		VehicleID:     b.VehicleID,
		VehicleName:   b.VehicleName,
		PickupDate:    b.PickupDate.Format(booking.DateLayout),
		ReturnDate:    b.ReturnDate.Format(booking.DateLayout),
		Days:          b.Days,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		Actor:         actor,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
