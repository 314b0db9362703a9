package api

import (
	"net/http"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	FlightID      string `json:"flight_id"`
	RouteID       string `json:"route_id"`
	AircraftID    string `json:"aircraft_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Status        string `json:"status"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.GET("/:id/seats", h.seats)
}

func (h *FlightHandler) search(c *gin.Context) {
	query := flights.SearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
	}
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(c, domain.ErrInvalidDate)
			return
		}
		query.Date = &parsed
	}

	results, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]flightResponse, 0, len(results))
	for _, f := range results {
		out = append(out, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) seats(c *gin.Context) {
	inventory, err := h.service.SeatAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		FlightID:      f.FlightID,
		RouteID:       f.RouteID,
		AircraftID:    f.AircraftID,
		DepartureTime: f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   f.ArrivalTime.Format(time.RFC3339),
		Status:        string(f.Status),
	}
}
