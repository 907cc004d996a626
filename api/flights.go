package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/service/flights"
	"github.com/reinvvay/airport-api/internal/upsert"
)

// NewFlightHandler wires the flight collection with search, filter and ordering
// taken from the query string.
func NewFlightHandler(service flights.FlightUseCase) *ResourceHandler[domain.Flight, upsert.FlightInput] {
	return &ResourceHandler[domain.Flight, upsert.FlightInput]{
		service: service,
		list: func(c *gin.Context) {
			q, err := flights.ParseFlightQuery(c.Request.URL.Query())
			if err != nil {
				respondError(c, err)
				return
			}
			items, err := service.List(c.Request.Context(), q)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, items)
		},
	}
}
