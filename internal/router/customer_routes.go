package router

import (
	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/handler"
	"github.com/haiderrentals/rental-api/internal/middleware"
)

// RegisterCustomer registers the endpoints a signed-in customer uses to see
// and cancel their own bookings.  Every route requires a valid access token
// with the CUSTOMER role; admins use the /v1/admin endpoints instead.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group("/v1/my-bookings")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(handler.RoleCustomer))

	// List the caller's own bookings, newest first.  Bookings made as a guest
	// with the same email address are included.
	g.GET("", h.ListMyBookings)
	// Cancel one of the caller's pending bookings.
	g.DELETE("/:id", h.CancelMyBooking)
}
