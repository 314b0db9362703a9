package api

import (
	"net/http"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createReservationRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	FlightID   string `json:"flight_id" binding:"required"`
	SeatNumber string `json:"seat_number" binding:"required"`
}

type reservationResponse struct {
	ReservationID string  `json:"reservation_id"`
	UserID        string  `json:"user_id"`
	FlightID      string  `json:"flight_id"`
	SeatNumber    string  `json:"seat_number"`
	FinalPrice    float64 `json:"final_price"`
	Status        string  `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.DELETE("/:id", h.cancel)
}

// RegisterUserRoutes mounts the per-user reservation views.
func (h *BookingHandler) RegisterUserRoutes(router *gin.RouterGroup) {
	router.GET("/:id/reservations", h.myReservations)
	router.GET("/:id/payments", h.paymentHistory)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.Book(c.Request.Context(), booking.BookInput{
		UserID:     req.UserID,
		FlightID:   req.FlightID,
		SeatNumber: req.SeatNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(*reservation))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *BookingHandler) myReservations(c *gin.Context) {
	reservations, err := h.service.MyReservations(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]reservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) paymentHistory(c *gin.Context) {
	details, err := h.service.PaymentHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func toReservationResponse(r domain.Reservation) reservationResponse {
	return reservationResponse{
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		FlightID:      r.FlightID,
		SeatNumber:    r.SeatNumber,
		FinalPrice:    r.FinalPrice,
		Status:        string(r.Status),
	}
}
