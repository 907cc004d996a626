package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/service/airplanes"
	"github.com/reinvvay/airport-api/internal/service/airports"
	"github.com/reinvvay/airport-api/internal/service/crew"
	"github.com/reinvvay/airport-api/internal/service/flights"
	"github.com/reinvvay/airport-api/internal/service/orders"
	"github.com/reinvvay/airport-api/internal/service/users"
	"github.com/reinvvay/airport-api/internal/upsert"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Airports      airports.AirportUseCase
	Routes        airports.RouteUseCase
	Crew          crew.CrewUseCase
	AirplaneTypes airplanes.AirplaneTypeUseCase
	Airplanes     airplanes.AirplaneUseCase
	Flights       flights.FlightUseCase
	Orders        orders.OrderUseCase
	Tickets       orders.TicketUseCase
	Users         users.UserUseCase
}

func NewRouter(svc Services, authn Authenticator, swaggerDir string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if swaggerDir != "" {
		r.Static("/swagger", swaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/openapi.yaml"))))
	}

	api := r.Group("/api", Authenticate(authn))
	NewUserHandler(svc.Users).Register(api.Group("/user"))

	airport := api.Group("/airport", Guard())
	NewResourceHandler[domain.Airport, upsert.AirportInput](svc.Airports).Register(airport.Group("/airports"))
	NewResourceHandler[domain.Route, upsert.RouteInput](svc.Routes).Register(airport.Group("/routes"))
	NewResourceHandler[domain.Crew, upsert.CrewInput](svc.Crew).Register(airport.Group("/crew"))
	NewResourceHandler[domain.AirplaneType, upsert.AirplaneTypeInput](svc.AirplaneTypes).Register(airport.Group("/airplane-types"))
	NewResourceHandler[domain.Airplane, upsert.AirplaneInput](svc.Airplanes).Register(airport.Group("/airplanes"))
	NewFlightHandler(svc.Flights).Register(airport.Group("/flights"))
	NewResourceHandler[domain.Order, upsert.OrderInput](svc.Orders).Register(airport.Group("/orders"))
	NewResourceHandler[domain.Ticket, upsert.TicketInput](svc.Tickets).Register(airport.Group("/tickets"))

	return r
}
