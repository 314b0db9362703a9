package store

import (
	"context"

	"github.com/daehyun-dev/skyreserve/internal/domain"
)

// Store owns every entity collection. All reads return copies; all writes go
// through the update methods. LoadAll and SaveAll are lifecycle boundaries
// and must not run concurrently with booking traffic.
type Store interface {
	LoadAll(ctx context.Context) error
	SaveAll(ctx context.Context) error

	User(ctx context.Context, userID string) (domain.User, error)
	AddUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	// AdjustMileage applies delta to the user's balance in a single write,
	// clamping at zero, and returns the new balance. Mileage writes must go
	// through here, never through UpdateUser read-modify-write.
	AdjustMileage(ctx context.Context, userID string, delta int) (int, error)

	Airport(ctx context.Context, code string) (domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)

	Aircraft(ctx context.Context, aircraftID string) (domain.Aircraft, error)

	Route(ctx context.Context, routeID string) (domain.Route, error)
	RoutesByAirports(ctx context.Context, origin, destination string) ([]domain.Route, error)

	Flight(ctx context.Context, flightID string) (domain.Flight, error)
	FlightsByRoute(ctx context.Context, routeID string) ([]domain.Flight, error)

	Reservation(ctx context.Context, reservationID string) (domain.Reservation, error)
	AddReservation(ctx context.Context, r domain.Reservation) error
	UpdateReservation(ctx context.Context, r domain.Reservation) error
	ReservationsByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error)
	ReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
}
