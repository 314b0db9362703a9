package flights

import (
	"context"
	"sort"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
)

type FlightUseCase interface {
	Search(ctx context.Context, query SearchQuery) ([]domain.Flight, error)
	GetByID(ctx context.Context, flightID string) (domain.Flight, error)
	SeatAvailability(ctx context.Context, flightID string) (domain.SeatInventory, error)
}

// Cache holds search results keyed by (origin, destination, date). A nil
// cache disables caching entirely.
type Cache interface {
	GetSearch(ctx context.Context, origin, destination, date string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, origin, destination, date string, flights []domain.Flight) error
}

type SearchQuery struct {
	Origin      string
	Destination string
	// Date restricts results to flights departing on that calendar day.
	// Nil means all dates.
	Date *time.Time
}

const searchDateLayout = "2006-01-02"

func (q SearchQuery) dateKey() string {
	if q.Date == nil {
		return ""
	}
	return q.Date.Format(searchDateLayout)
}

type FlightService struct {
	store store.Store
	cache Cache
	log   logger.Logger
}

func NewFlightService(st store.Store, cache Cache, log logger.Logger) *FlightService {
	return &FlightService{store: st, cache: cache, log: log}
}

// Search resolves matching routes first, then their flights, keeping only
// bookable ones. No matching route is an empty result, not an error.
func (s *FlightService) Search(ctx context.Context, query SearchQuery) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, query.Origin, query.Destination, query.dateKey()); err == nil && cached != nil {
			return cached, nil
		}
	}

	routes, err := s.store.RoutesByAirports(ctx, query.Origin, query.Destination)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Flight, 0)
	for _, route := range routes {
		flights, err := s.store.FlightsByRoute(ctx, route.RouteID)
		if err != nil {
			return nil, err
		}
		for _, f := range flights {
			if !f.Bookable() {
				continue
			}
			if query.Date != nil && !sameDay(f.DepartureTime, *query.Date) {
				continue
			}
			results = append(results, f)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, query.Origin, query.Destination, query.dateKey(), results); err != nil {
			s.log.Warn("search cache write failed", "error", err)
		}
	}
	return results, nil
}

func (s *FlightService) GetByID(ctx context.Context, flightID string) (domain.Flight, error) {
	return s.store.Flight(ctx, flightID)
}

// SeatAvailability derives the seat counts for one flight from its aircraft
// capacity and the confirmed reservations against it. Available can be
// negative only if loaded data already violated the capacity invariant;
// callers treat that as zero capacity.
func (s *FlightService) SeatAvailability(ctx context.Context, flightID string) (domain.SeatInventory, error) {
	flight, err := s.store.Flight(ctx, flightID)
	if err != nil {
		return domain.SeatInventory{}, err
	}
	aircraft, err := s.store.Aircraft(ctx, flight.AircraftID)
	if err != nil {
		return domain.SeatInventory{}, err
	}

	reservations, err := s.store.ReservationsByFlight(ctx, flightID)
	if err != nil {
		return domain.SeatInventory{}, err
	}
	reserved := 0
	for _, r := range reservations {
		if r.Status == domain.ReservationStatusConfirmed {
			reserved++
		}
	}

	return domain.SeatInventory{
		Total:     aircraft.TotalSeats,
		Reserved:  reserved,
		Available: aircraft.TotalSeats - reserved,
	}, nil
}

type SortKey string

const (
	SortByDeparture SortKey = "departure"
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
)

// Sort orders search results in place. Result ordering is otherwise store
// insertion order, so callers wanting price/time ordering use this.
func (s *FlightService) Sort(ctx context.Context, flights []domain.Flight, key SortKey) {
	switch key {
	case SortByPrice:
		prices := s.routeValues(ctx, flights, func(r domain.Route) float64 { return r.BasePrice })
		sort.SliceStable(flights, func(i, j int) bool {
			return prices[flights[i].FlightID] < prices[flights[j].FlightID]
		})
	case SortByDuration:
		durations := s.routeValues(ctx, flights, func(r domain.Route) float64 { return float64(r.DurationMinutes) })
		sort.SliceStable(flights, func(i, j int) bool {
			return durations[flights[i].FlightID] < durations[flights[j].FlightID]
		})
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureTime.Before(flights[j].DepartureTime)
		})
	}
}

func (s *FlightService) routeValues(ctx context.Context, flights []domain.Flight, pick func(domain.Route) float64) map[string]float64 {
	values := make(map[string]float64, len(flights))
	for _, f := range flights {
		route, err := s.store.Route(ctx, f.RouteID)
		if err != nil {
			values[f.FlightID] = 0
			continue
		}
		values[f.FlightID] = pick(route)
	}
	return values
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var _ FlightUseCase = (*FlightService)(nil)
