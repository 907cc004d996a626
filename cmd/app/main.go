package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/api"
	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/bootstrap"
	"github.com/reinvvay/airport-api/internal/cache"
	"github.com/reinvvay/airport-api/internal/kafka"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service"
	"github.com/reinvvay/airport-api/internal/service/airplanes"
	"github.com/reinvvay/airport-api/internal/service/airports"
	"github.com/reinvvay/airport-api/internal/service/crew"
	"github.com/reinvvay/airport-api/internal/service/flights"
	"github.com/reinvvay/airport-api/internal/service/orders"
	"github.com/reinvvay/airport-api/internal/service/users"
	"github.com/reinvvay/airport-api/internal/upsert"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.Log.Level)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, flight listings will not be cached", "error", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
	defer producer.Close()
	events := service.NewEvents(producer, cfg.Kafka.EventsTopic, logger)

	tx := repository.NewTxManager(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	resolver := upsert.NewResolver(airportRepo, routeRepo, typeRepo, airplaneRepo, crewRepo)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute)

	userService := users.NewUserService(userRepo, tokens, cfg.Auth.BcryptCost)

	svc := api.Services{
		Airports:      airports.NewAirportService(airportRepo, tx, redisCache, logger),
		Routes:        airports.NewRouteService(routeRepo, resolver, tx, redisCache, logger),
		Crew:          crew.NewCrewService(crewRepo, tx, redisCache, logger),
		AirplaneTypes: airplanes.NewAirplaneTypeService(typeRepo, tx, redisCache, logger),
		Airplanes:     airplanes.NewAirplaneService(airplaneRepo, resolver, tx, redisCache, logger),
		Flights:       flights.NewFlightService(flightRepo, resolver, tx, redisCache, events, logger),
		Orders:        orders.NewOrderService(orderRepo, userRepo, tx, events),
		Tickets:       orders.NewTicketService(ticketRepo, flightRepo, orderRepo, tx, events),
		Users:         userService,
	}

	router := api.NewRouter(svc, userService, cfg.HTTP.SwaggerDir, logger)
	if err := bootstrap.Run(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
