package router

import (
	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/handler"
	"github.com/haiderrentals/rental-api/internal/middleware"
)

// RegisterAdmin registers the back-office endpoints under /v1/admin.  Every
// route requires a valid access token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(handler.RoleAdmin))

	// Dashboard aggregates: booking counts, confirmed revenue, unread
	// message count.
	g.GET("/stats", h.GetStats)

	// Full booking list and status changes (confirm, cancel).
	g.GET("/bookings", h.ListBookings)
	g.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

	// Contact message inbox.
	g.GET("/messages", h.ListMessages)
	g.PATCH("/messages/:id/read", h.MarkMessageRead)
	g.DELETE("/messages/:id", h.DeleteMessage)
}
