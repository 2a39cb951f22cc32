package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/haiderrentals/rental-api/internal/config"
	"github.com/haiderrentals/rental-api/internal/handler"
	"github.com/haiderrentals/rental-api/internal/middleware"
)

// RegisterPublic registers unauthenticated endpoints on the provided Echo
// instance: fleet browsing, booking creation and the contact form.  No JWT or
// role middleware is applied so that guests can book without an account.
//
// Fleet reads go through the Redis response cache; the write endpoints are
// rate limited per client to keep the open booking and contact forms from
// being flooded.  Both middlewares degrade to passthrough when Redis is
// unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	limit := middleware.NewTokenBucket(rlCfg, rdb)

	// Browse the vehicle catalog.  Supports ?type=, ?max_price= and ?seats=
	// query parameters; the full list is returned when none are given.
	e.GET("/v1/fleet", p.ListFleet, cache)
	// Vehicle details by catalog id.
	e.GET("/v1/fleet/:id", p.GetVehicle, cache)

	// Create a booking.  An Authorization header is optional: when a valid
	// bearer token is present the booking is linked to that account.
	e.POST("/v1/bookings", p.CreateBooking, limit)
	// Submit a contact form message.
	e.POST("/v1/contact", p.CreateMessage, limit)
}
