package flights

import (
	"context"
	"testing"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSearch(ctx context.Context, origin, destination, date string) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, origin, destination, date string, flights []domain.Flight) error {
	args := m.Called(ctx, origin, destination, date, flights)
	return args.Error(0)
}

func seedStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore(t.TempDir(), logger.NewNop())
	ctx := context.Background()

	require.NoError(t, st.AddAirport(ctx, domain.Airport{Code: "ICN", Name: "Incheon", City: "Seoul", Country: "KR"}))
	require.NoError(t, st.AddAirport(ctx, domain.Airport{Code: "CJU", Name: "Jeju", City: "Jeju", Country: "KR"}))
	require.NoError(t, st.AddAircraft(ctx, domain.Aircraft{AircraftID: "A1", ModelName: "B737", TotalSeats: 2, EconomySeats: 2, BusinessSeats: 0}))
	require.NoError(t, st.AddRoute(ctx, domain.Route{RouteID: "R1", Origin: "ICN", Destination: "CJU", BasePrice: 100000, DurationMinutes: 70}))

	day1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, st.AddFlight(ctx, domain.Flight{FlightID: "KE101", RouteID: "R1", AircraftID: "A1", DepartureTime: day1, ArrivalTime: day1.Add(70 * time.Minute), Status: domain.FlightStatusScheduled}))
	require.NoError(t, st.AddFlight(ctx, domain.Flight{FlightID: "KE102", RouteID: "R1", AircraftID: "A1", DepartureTime: day2, ArrivalTime: day2.Add(70 * time.Minute), Status: domain.FlightStatusScheduled}))
	require.NoError(t, st.AddFlight(ctx, domain.Flight{FlightID: "KE103", RouteID: "R1", AircraftID: "A1", DepartureTime: day1.Add(4 * time.Hour), ArrivalTime: day1.Add(5 * time.Hour), Status: domain.FlightStatusClosed}))
	return st
}

func TestFlightService_Search_AllDates(t *testing.T) {
	service := NewFlightService(seedStore(t), nil, logger.NewNop())

	results, err := service.Search(context.Background(), SearchQuery{Origin: "ICN", Destination: "CJU"})
	require.NoError(t, err)

	ids := make([]string, 0, len(results))
	for _, f := range results {
		ids = append(ids, f.FlightID)
	}
	// Closed KE103 is filtered out.
	assert.ElementsMatch(t, []string{"KE101", "KE102"}, ids)
}

func TestFlightService_Search_ByDate(t *testing.T) {
	service := NewFlightService(seedStore(t), nil, logger.NewNop())

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	results, err := service.Search(context.Background(), SearchQuery{Origin: "ICN", Destination: "CJU", Date: &date})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "KE102", results[0].FlightID)
}

func TestFlightService_Search_CaseInsensitiveCodes(t *testing.T) {
	service := NewFlightService(seedStore(t), nil, logger.NewNop())

	results, err := service.Search(context.Background(), SearchQuery{Origin: "icn", Destination: "cju"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestFlightService_Search_NoRouteIsEmptyNotError(t *testing.T) {
	service := NewFlightService(seedStore(t), nil, logger.NewNop())

	results, err := service.Search(context.Background(), SearchQuery{Origin: "ICN", Destination: "PUS"})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestFlightService_Search_CacheHitSkipsStore(t *testing.T) {
	mockCache := &MockCache{}
	service := NewFlightService(seedStore(t), mockCache, logger.NewNop())

	cached := []domain.Flight{{FlightID: "KE999", RouteID: "R1", Status: domain.FlightStatusScheduled}}
	mockCache.On("GetSearch", mock.Anything, "ICN", "CJU", "").Return(cached, nil).Once()

	results, err := service.Search(context.Background(), SearchQuery{Origin: "ICN", Destination: "CJU"})
	require.NoError(t, err)
	assert.Equal(t, cached, results)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheMissFillsCache(t *testing.T) {
	mockCache := &MockCache{}
	service := NewFlightService(seedStore(t), mockCache, logger.NewNop())

	mockCache.On("GetSearch", mock.Anything, "ICN", "CJU", "2026-09-01").Return(nil, nil).Once()
	mockCache.On("SetSearch", mock.Anything, "ICN", "CJU", "2026-09-01", mock.AnythingOfType("[]domain.Flight")).Return(nil).Once()

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	results, err := service.Search(context.Background(), SearchQuery{Origin: "ICN", Destination: "CJU", Date: &date})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "KE101", results[0].FlightID)
	mockCache.AssertExpectations(t)
}

func TestFlightService_SeatAvailability(t *testing.T) {
	st := seedStore(t)
	service := NewFlightService(st, nil, logger.NewNop())
	ctx := context.Background()

	inventory, err := service.SeatAvailability(ctx, "KE101")
	require.NoError(t, err)
	assert.Equal(t, domain.SeatInventory{Total: 2, Reserved: 0, Available: 2}, inventory)

	require.NoError(t, st.AddReservation(ctx, domain.Reservation{ReservationID: "RES-1", UserID: "u1", FlightID: "KE101", SeatNumber: "1A", FinalPrice: 100000, Status: domain.ReservationStatusConfirmed}))
	require.NoError(t, st.AddReservation(ctx, domain.Reservation{ReservationID: "RES-2", UserID: "u2", FlightID: "KE101", SeatNumber: "1B", FinalPrice: 100000, Status: domain.ReservationStatusCancelled}))

	inventory, err = service.SeatAvailability(ctx, "KE101")
	require.NoError(t, err)
	// Cancelled reservations do not hold seats.
	assert.Equal(t, domain.SeatInventory{Total: 2, Reserved: 1, Available: 1}, inventory)
}

func TestFlightService_SeatAvailability_NotFound(t *testing.T) {
	service := NewFlightService(seedStore(t), nil, logger.NewNop())

	_, err := service.SeatAvailability(context.Background(), "XX000")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestFlightService_Sort(t *testing.T) {
	st := seedStore(t)
	ctx := context.Background()
	require.NoError(t, st.AddRoute(ctx, domain.Route{RouteID: "R2", Origin: "ICN", Destination: "CJU", BasePrice: 50000, DurationMinutes: 200}))
	early := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	require.NoError(t, st.AddFlight(ctx, domain.Flight{FlightID: "LJ301", RouteID: "R2", AircraftID: "A1", DepartureTime: early, ArrivalTime: early.Add(200 * time.Minute), Status: domain.FlightStatusScheduled}))

	service := NewFlightService(st, nil, logger.NewNop())
	results, err := service.Search(ctx, SearchQuery{Origin: "ICN", Destination: "CJU"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	service.Sort(ctx, results, SortByPrice)
	assert.Equal(t, "LJ301", results[0].FlightID)

	service.Sort(ctx, results, SortByDeparture)
	assert.Equal(t, "LJ301", results[0].FlightID)
	assert.Equal(t, "KE101", results[1].FlightID)

	service.Sort(ctx, results, SortByDuration)
	assert.Equal(t, "LJ301", results[2].FlightID)
}
