package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/cinetix/session-booking/internal/config"
	"github.com/cinetix/session-booking/internal/database"
	"github.com/cinetix/session-booking/internal/handler"
	"github.com/cinetix/session-booking/internal/middleware"
	"github.com/cinetix/session-booking/internal/queue"
	"github.com/cinetix/session-booking/internal/repository"
	"github.com/cinetix/session-booking/internal/router"
)

func main() {
	// .env is a development convenience; in production the variables come
	// from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response cache disabled")
	}

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	filmRepo := repository.NewFilmRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	ticketRepo := repository.NewTicketRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	ownerHandler := handler.NewOwnerHandler(filmRepo, roomRepo, sessionRepo)
	publicHandler := handler.NewPublicHandler(roomRepo, filmRepo, sessionRepo)
	customerHandler := handler.NewCustomerHandler(sessionRepo, roomRepo, filmRepo, ticketRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler)
	router.RegisterOwner(e, ownerHandler, cfg.JWTSecret)
	router.RegisterCustomer(e, customerHandler, cfg.JWTSecret)

	// The ticket audit consumer runs alongside the API and reconnects on
	// its own; a missing broker must not block startup.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
