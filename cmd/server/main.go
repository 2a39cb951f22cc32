package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv" // Load .env files into the environment
	"github.com/labstack/echo/v4"

	"github.com/haiderrentals/rental-api/internal/config"
	"github.com/haiderrentals/rental-api/internal/database"
	"github.com/haiderrentals/rental-api/internal/handler"
	"github.com/haiderrentals/rental-api/internal/queue"
	"github.com/haiderrentals/rental-api/internal/repository"
	"github.com/haiderrentals/rental-api/internal/router"
)

func main() {
	// Load .env if present; in production the variables come from the
	// environment directly and the file is simply absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter.  Both middlewares
	// fall back to passthrough when the client is nil, so a missing Redis
	// never blocks startup.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// The consumer drains booking events from RabbitMQ into the booking log.
	// It reconnects on its own, so a failure here is logged, not fatal.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)
	messages := repository.NewMessageRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicHandler(cfg, bookings, messages)
	customerH := handler.NewCustomerHandler(users, bookings)
	adminH := handler.NewAdminHandler(bookings, messages)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheCfg, rlCfg, rdb)
	router.RegisterCustomer(e, customerH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
