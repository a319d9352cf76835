package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/service/search"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockSearchUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockSearchUseCase) Search(ctx context.Context, criteria search.Criteria) ([]domain.Flight, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockSearchUseCase) SearchMultiCity(ctx context.Context, segments []search.Segment, cabinClass string, passengers int) ([][]domain.Flight, error) {
	args := m.Called(ctx, segments, cabinClass, passengers)
	return args.Get(0).([][]domain.Flight), args.Error(1)
}

func sampleFlight() domain.Flight {
	return domain.Flight{
		ID:              "f1",
		FlightNumber:    "VN123",
		From:            "HAN",
		To:              "SGN",
		Airline:         "Vietnam Airlines",
		Departure:       time.Date(2025, 11, 7, 6, 30, 0, 0, time.UTC),
		Price:           1850000,
		AvailableCabins: []domain.CabinClass{domain.CabinEconomy},
		SeatsAvailable:  map[domain.CabinClass]int{domain.CabinEconomy: 50},
	}
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/flights", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Flight{sampleFlight()}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "f1"}}
	c.Request = httptest.NewRequest("GET", "/api/v1/flights/f1", nil)

	flight := sampleFlight()
	mockService.On("GetByID", c.Request.Context(), "f1").Return(&flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/api/v1/flights/missing", nil)

	mockService.On("GetByID", c.Request.Context(), "missing").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_search_PassesQueryParams(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET",
		"/api/v1/flights/search?from=HAN&to=SGN&date=2025-11-07&cabinClass=Business&passengers=2", nil)

	mockService.On("Search", c.Request.Context(), search.Criteria{
		From:       "HAN",
		To:         "SGN",
		Date:       "2025-11-07",
		CabinClass: "Business",
		Passengers: 2,
	}).Return([]domain.Flight{sampleFlight()}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_searchMultiCity(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	segments := []search.Segment{
		{From: "HAN", To: "DAD", Date: "2025-11-07"},
		{From: "DAD", To: "SGN", Date: "2025-11-09"},
	}
	body, _ := json.Marshal(multiCitySearchRequest{Segments: segments, CabinClass: "Economy", Passengers: 1})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/flights/search/multicity", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("SearchMultiCity", c.Request.Context(), segments, "Economy", 1).
		Return([][]domain.Flight{{sampleFlight()}, {}}, nil)

	handler.searchMultiCity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_searchMultiCity_RejectsEmptySegments(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/flights/search/multicity",
		bytes.NewReader([]byte(`{"segments":[]}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.searchMultiCity(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SearchMultiCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
