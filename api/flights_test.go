package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, query flights.SearchQuery) ([]domain.Flight, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, flightID string) (domain.Flight, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).(domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) SeatAvailability(ctx context.Context, flightID string) (domain.SeatInventory, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).(domain.SeatInventory), args.Error(1)
}

func sampleFlight() domain.Flight {
	return domain.Flight{
		FlightID:      "KE101",
		RouteID:       "R1",
		AircraftID:    "A1",
		DepartureTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 1, 10, 10, 0, 0, time.UTC),
		Status:        domain.FlightStatusScheduled,
	}
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=ICN&destination=CJU", nil)

	query := flights.SearchQuery{Origin: "ICN", Destination: "CJU"}
	mockService.On("Search", c.Request.Context(), query).Return([]domain.Flight{sampleFlight()}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []flightResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "KE101", response[0].FlightID)
	assert.Equal(t, string(domain.FlightStatusScheduled), response[0].Status)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_withDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=ICN&destination=CJU&date=2026-09-01", nil)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	query := flights.SearchQuery{Origin: "ICN", Destination: "CJU", Date: &date}
	mockService.On("Search", c.Request.Context(), query).Return([]domain.Flight{sampleFlight()}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_badDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=ICN&destination=CJU&date=not-a-date", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_empty(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=ICN&destination=NRT", nil)

	query := flights.SearchQuery{Origin: "ICN", Destination: "NRT"}
	mockService.On("Search", c.Request.Context(), query).Return([]domain.Flight{}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "KE101"}}
	c.Request = httptest.NewRequest("GET", "/flights/KE101", nil)

	mockService.On("GetByID", c.Request.Context(), "KE101").Return(sampleFlight(), nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response flightResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "KE101", response.FlightID)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_notFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "KE999"}}
	c.Request = httptest.NewRequest("GET", "/flights/KE999", nil)

	mockService.On("GetByID", c.Request.Context(), "KE999").Return(domain.Flight{}, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_seats(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "KE101"}}
	c.Request = httptest.NewRequest("GET", "/flights/KE101/seats", nil)

	inventory := domain.SeatInventory{Total: 180, Reserved: 12, Available: 168}
	mockService.On("SeatAvailability", c.Request.Context(), "KE101").Return(inventory, nil)

	handler.seats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.SeatInventory
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 168, response.Available)

	mockService.AssertExpectations(t)
}
