package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/kafka"
	"github.com/daehyun-dev/skyreserve/internal/service/flights"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
	"github.com/daehyun-dev/skyreserve/pkg/metrics"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID, userID string) error
	MyReservations(ctx context.Context, userID string) ([]domain.Reservation, error)
	PaymentHistory(ctx context.Context, userID string) ([]PaymentDetail, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Ledger is the loyalty balance write path.
type Ledger interface {
	Accrue(ctx context.Context, userID string, price float64) (int, error)
	Reverse(ctx context.Context, userID string, price float64) (int, error)
}

type BookingService struct {
	store              store.Store
	flights            flights.FlightUseCase
	ledger             Ledger
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	locks              *flightLocks
	log                logger.Logger
	metrics            *metrics.Metrics
}

type BookInput struct {
	UserID     string `json:"user_id"`
	FlightID   string `json:"flight_id"`
	SeatNumber string `json:"seat_number"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithMetrics(m *metrics.Metrics) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = m
	}
}

func NewBookingService(
	st store.Store,
	flightSvc flights.FlightUseCase,
	ledger Ledger,
	producer Producer,
	reservationsTopic string,
	log logger.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		store:             st,
		flights:           flightSvc,
		ledger:            ledger,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		locks:             newFlightLocks(),
		log:               log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book runs the full precondition chain under the flight's lock and, when
// every rule passes, persists a confirmed reservation and accrues mileage.
// Nothing is persisted on failure.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	if input.SeatNumber == "" {
		return nil, s.rejected("invalid_seat", errors.New("seat number is required"))
	}

	start := time.Now()
	lock := s.locks.forFlight(input.FlightID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.User(ctx, input.UserID)
	if err != nil {
		return nil, s.rejected("user_not_found", err)
	}

	flight, err := s.store.Flight(ctx, input.FlightID)
	if err != nil {
		return nil, s.rejected("flight_not_found", err)
	}
	if !flight.Bookable() {
		return nil, s.rejected("flight_not_bookable", domain.ErrFlightNotBookable)
	}

	inventory, err := s.flights.SeatAvailability(ctx, input.FlightID)
	if err != nil {
		return nil, s.rejected("availability", err)
	}
	if inventory.Available <= 0 {
		return nil, s.rejected("flight_full", domain.ErrFlightFull)
	}

	reservations, err := s.store.ReservationsByFlight(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		if r.Status == domain.ReservationStatusConfirmed && r.SeatNumber == input.SeatNumber {
			return nil, s.rejected("seat_taken", domain.ErrSeatTaken)
		}
	}

	// Price falls back to zero when the route is unresolvable; this is a
	// defensive default inherited from the file-backed data model.
	price := 0.0
	if route, err := s.store.Route(ctx, flight.RouteID); err == nil {
		price = route.BasePrice
	} else {
		s.log.Warn("route missing for flight, booking at zero price", "flight", flight.FlightID, "route", flight.RouteID)
	}

	reservation := domain.Reservation{
		ReservationID: uuid.NewString(),
		UserID:        user.UserID,
		FlightID:      flight.FlightID,
		SeatNumber:    input.SeatNumber,
		FinalPrice:    price,
		Status:        domain.ReservationStatusConfirmed,
	}
	if err := s.store.AddReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	earned, err := s.ledger.Accrue(ctx, user.UserID, price)
	if err != nil {
		s.log.Error("mileage accrual failed", "user", user.UserID, "reservation", reservation.ReservationID, "error", err)
	} else if s.metrics != nil {
		s.metrics.MileageAccrued.Add(float64(earned))
	}

	if s.metrics != nil {
		s.metrics.ReservationsCreated.Inc()
		s.metrics.BookingDuration.Observe(time.Since(start).Seconds())
	}
	s.publish(ctx, kafka.EventReservationConfirmed, reservation)

	s.log.Info("reservation confirmed",
		"reservation", reservation.ReservationID,
		"user", user.UserID,
		"flight", flight.FlightID,
		"seat", input.SeatNumber,
		"mileage_earned", earned,
	)
	return &reservation, nil
}

// Cancel transitions a reservation to Cancelled and reverses its mileage.
// Only the owner may cancel, and Cancelled is terminal: a second cancel
// reports ErrAlreadyCancelled so callers can retry safely without
// double-deducting.
func (s *BookingService) Cancel(ctx context.Context, reservationID, userID string) error {
	reservation, err := s.store.Reservation(ctx, reservationID)
	if err != nil {
		return err
	}

	lock := s.locks.forFlight(reservation.FlightID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; a concurrent cancel may have won.
	reservation, err = s.store.Reservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return domain.ErrNotReservationOwner
	}
	if reservation.Status == domain.ReservationStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	reservation.Status = domain.ReservationStatusCancelled
	if err := s.store.UpdateReservation(ctx, reservation); err != nil {
		return fmt.Errorf("persist cancellation: %w", err)
	}

	deducted, err := s.ledger.Reverse(ctx, userID, reservation.FinalPrice)
	if err != nil {
		s.log.Error("mileage reversal failed", "user", userID, "reservation", reservationID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.ReservationsCancelled.Inc()
	}
	s.publish(ctx, kafka.EventReservationCancelled, reservation)

	s.log.Info("reservation cancelled",
		"reservation", reservationID,
		"user", userID,
		"mileage_deducted", deducted,
	)
	return nil
}

// MyReservations returns every reservation for the user, cancelled ones
// included; display-level filtering is the caller's concern.
func (s *BookingService) MyReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.store.ReservationsByUser(ctx, userID)
}

// PaymentDetail is one confirmed reservation joined with its flight, route
// and airport reference data.
type PaymentDetail struct {
	ReservationID string  `json:"reservation_id"`
	Airline       string  `json:"airline"`
	FlightNo      string  `json:"flight_no"`
	Route         string  `json:"route"`
	TimeInfo      string  `json:"time_info"`
	Seat          string  `json:"seat"`
	Price         float64 `json:"price"`
}

func (s *BookingService) PaymentHistory(ctx context.Context, userID string) ([]PaymentDetail, error) {
	reservations, err := s.store.ReservationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]PaymentDetail, 0, len(reservations))
	for _, r := range reservations {
		if r.Status != domain.ReservationStatusConfirmed {
			continue
		}
		flight, err := s.store.Flight(ctx, r.FlightID)
		if err != nil {
			continue
		}
		route, err := s.store.Route(ctx, flight.RouteID)
		if err != nil {
			continue
		}
		origin, err := s.store.Airport(ctx, route.Origin)
		if err != nil {
			continue
		}
		destination, err := s.store.Airport(ctx, route.Destination)
		if err != nil {
			continue
		}

		airline := flight.FlightID
		if len(airline) > 2 {
			airline = airline[:2]
		}
		details = append(details, PaymentDetail{
			ReservationID: r.ReservationID,
			Airline:       airline,
			FlightNo:      flight.FlightID,
			Route:         origin.Name + " -> " + destination.Name,
			TimeInfo:      flight.DepartureTime.Format("15:04") + " ~ " + flight.ArrivalTime.Format("15:04"),
			Seat:          r.SeatNumber,
			Price:         r.FinalPrice,
		})
	}
	return details, nil
}

func (s *BookingService) rejected(reason string, err error) error {
	if s.metrics != nil {
		s.metrics.BookingFailures.WithLabelValues(reason).Inc()
	}
	return err
}

func (s *BookingService) publish(ctx context.Context, eventType string, r domain.Reservation) {
	if s.producer == nil || s.reservationsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:          eventType,
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		FlightID:      r.FlightID,
		SeatNumber:    r.SeatNumber,
		FinalPrice:    r.FinalPrice,
		Status:        string(r.Status),
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, r.ReservationID, event); err != nil {
		s.log.Warn("publish reservation event failed", "type", eventType, "reservation", r.ReservationID, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, r.ReservationID, event); err != nil {
			s.log.Warn("publish notification event failed", "type", eventType, "reservation", r.ReservationID, "error", err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
