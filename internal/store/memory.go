package store

import (
	"context"
	"strings"
	"sync"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
)

// MemoryStore keeps every collection in memory and persists through the
// flat-file codec at LoadAll/SaveAll time. Collections are plain slices;
// volumes are bounded by aircraft capacity, so linear scans are fine.
type MemoryStore struct {
	mu  sync.RWMutex
	dir string
	log logger.Logger

	users        []domain.User
	aircraft     []domain.Aircraft
	airports     []domain.Airport
	flights      []domain.Flight
	reservations []domain.Reservation
	routes       []domain.Route
}

func NewMemoryStore(dataDir string, log logger.Logger) *MemoryStore {
	return &MemoryStore{dir: dataDir, log: log}
}

func (s *MemoryStore) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = loadUsers(s.dir, s.log)
	s.aircraft = loadAircraft(s.dir, s.log)
	s.airports = loadAirports(s.dir, s.log)
	s.flights = loadFlights(s.dir, s.log)
	s.reservations = loadReservations(s.dir, s.log)
	s.routes = loadRoutes(s.dir, s.log)

	s.log.Info("store loaded",
		"users", len(s.users),
		"aircraft", len(s.aircraft),
		"airports", len(s.airports),
		"flights", len(s.flights),
		"reservations", len(s.reservations),
		"routes", len(s.routes),
	)
	return nil
}

func (s *MemoryStore) SaveAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saveUsers(s.dir, s.users, s.log)
	saveAircraft(s.dir, s.aircraft, s.log)
	saveAirports(s.dir, s.airports, s.log)
	saveFlights(s.dir, s.flights, s.log)
	saveReservations(s.dir, s.reservations, s.log)
	saveRoutes(s.dir, s.routes, s.log)
	return nil
}

func (s *MemoryStore) User(ctx context.Context, userID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *MemoryStore) AddUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == user.UserID {
			return domain.ErrUserExists
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.UserID == user.UserID {
			s.users[i] = user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (s *MemoryStore) AdjustMileage(ctx context.Context, userID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.UserID == userID {
			balance := u.Mileage + delta
			if balance < 0 {
				balance = 0
			}
			s.users[i].Mileage = balance
			return balance, nil
		}
	}
	return 0, domain.ErrUserNotFound
}

func (s *MemoryStore) Airport(ctx context.Context, code string) (domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.airports {
		if strings.EqualFold(a.Code, code) {
			return a, nil
		}
	}
	return domain.Airport{}, domain.ErrAirportNotFound
}

func (s *MemoryStore) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Airport, len(s.airports))
	copy(out, s.airports)
	return out, nil
}

func (s *MemoryStore) Aircraft(ctx context.Context, aircraftID string) (domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.aircraft {
		if a.AircraftID == aircraftID {
			return a, nil
		}
	}
	return domain.Aircraft{}, domain.ErrAircraftNotFound
}

func (s *MemoryStore) AddAircraft(ctx context.Context, a domain.Aircraft) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft = append(s.aircraft, a)
	return nil
}

func (s *MemoryStore) Route(ctx context.Context, routeID string) (domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routes {
		if r.RouteID == routeID {
			return r, nil
		}
	}
	return domain.Route{}, domain.ErrRouteNotFound
}

func (s *MemoryStore) RoutesByAirports(ctx context.Context, origin, destination string) ([]domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Route
	for _, r := range s.routes {
		if strings.EqualFold(r.Origin, origin) && strings.EqualFold(r.Destination, destination) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) AddRoute(ctx context.Context, r domain.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, r)
	return nil
}

func (s *MemoryStore) AddAirport(ctx context.Context, a domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports = append(s.airports, a)
	return nil
}

func (s *MemoryStore) Flight(ctx context.Context, flightID string) (domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.flights {
		if f.FlightID == flightID {
			return f, nil
		}
	}
	return domain.Flight{}, domain.ErrFlightNotFound
}

func (s *MemoryStore) FlightsByRoute(ctx context.Context, routeID string) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Flight
	for _, f := range s.flights {
		if f.RouteID == routeID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *MemoryStore) AddFlight(ctx context.Context, f domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, f)
	return nil
}

func (s *MemoryStore) Reservation(ctx context.Context, reservationID string) (domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reservations {
		if r.ReservationID == reservationID {
			return r, nil
		}
	}
	return domain.Reservation{}, domain.ErrReservationNotFound
}

func (s *MemoryStore) AddReservation(ctx context.Context, r domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
	return nil
}

func (s *MemoryStore) UpdateReservation(ctx context.Context, r domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reservations {
		if existing.ReservationID == r.ReservationID {
			s.reservations[i] = r
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

func (s *MemoryStore) ReservationsByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Reservation
	for _, r := range s.reservations {
		if r.FlightID == flightID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) ReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Reservation
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
