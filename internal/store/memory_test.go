package store

import (
	"context"
	"testing"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	return NewMemoryStore(t.TempDir(), logger.NewNop())
}

func TestMemoryStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.User(ctx, "hong")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	user := domain.User{UserID: "hong", Password: "pw", Name: "HongGildong", PassportNumber: "M1234", Phone: "010-1111-2222"}
	require.NoError(t, s.AddUser(ctx, user))

	err = s.AddUser(ctx, user)
	assert.ErrorIs(t, err, domain.ErrUserExists)

	got, err := s.User(ctx, "hong")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	user.Mileage = 5000
	require.NoError(t, s.UpdateUser(ctx, user))
	got, err = s.User(ctx, "hong")
	require.NoError(t, err)
	assert.Equal(t, 5000, got.Mileage)
}

func TestMemoryStore_AdjustMileage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AdjustMileage(ctx, "nobody", 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, s.AddUser(ctx, domain.User{UserID: "hong", Password: "pw", Mileage: 1000}))

	balance, err := s.AdjustMileage(ctx, "hong", 5000)
	require.NoError(t, err)
	assert.Equal(t, 6000, balance)

	// Clamps at zero instead of going negative.
	balance, err = s.AdjustMileage(ctx, "hong", -9000)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	got, err := s.User(ctx, "hong")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Mileage)
}

func TestMemoryStore_RoutesByAirports_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddRoute(ctx, domain.Route{RouteID: "R1", Origin: "ICN", Destination: "CJU", BasePrice: 100000, DurationMinutes: 70}))
	require.NoError(t, s.AddRoute(ctx, domain.Route{RouteID: "R2", Origin: "ICN", Destination: "NRT", BasePrice: 250000, DurationMinutes: 140}))

	routes, err := s.RoutesByAirports(ctx, "icn", "cju")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "R1", routes[0].RouteID)

	routes, err = s.RoutesByAirports(ctx, "ICN", "PUS")
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestMemoryStore_Reservations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r1 := domain.Reservation{ReservationID: "RES-1", UserID: "u1", FlightID: "KE101", SeatNumber: "1A", FinalPrice: 100000, Status: domain.ReservationStatusConfirmed}
	r2 := domain.Reservation{ReservationID: "RES-2", UserID: "u2", FlightID: "KE101", SeatNumber: "1B", FinalPrice: 100000, Status: domain.ReservationStatusConfirmed}
	r3 := domain.Reservation{ReservationID: "RES-3", UserID: "u1", FlightID: "KE202", SeatNumber: "2C", FinalPrice: 80000, Status: domain.ReservationStatusConfirmed}
	require.NoError(t, s.AddReservation(ctx, r1))
	require.NoError(t, s.AddReservation(ctx, r2))
	require.NoError(t, s.AddReservation(ctx, r3))

	byFlight, err := s.ReservationsByFlight(ctx, "KE101")
	require.NoError(t, err)
	assert.Len(t, byFlight, 2)

	byUser, err := s.ReservationsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	r1.Status = domain.ReservationStatusCancelled
	require.NoError(t, s.UpdateReservation(ctx, r1))
	got, err := s.Reservation(ctx, "RES-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)

	err = s.UpdateReservation(ctx, domain.Reservation{ReservationID: "missing"})
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestMemoryStore_AddAircraftValidatesSeatSplit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AddAircraft(ctx, domain.Aircraft{AircraftID: "A1", ModelName: "B737", TotalSeats: 180, EconomySeats: 150, BusinessSeats: 20})
	assert.ErrorIs(t, err, domain.ErrInvalidSeatConfig)

	err = s.AddAircraft(ctx, domain.Aircraft{AircraftID: "A1", ModelName: "B737", TotalSeats: 180, EconomySeats: 160, BusinessSeats: 20})
	assert.NoError(t, err)
}
