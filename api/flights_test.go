package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightUseCase) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, originCity, destinationCity string) ([]*domain.Flight, error) {
	args := m.Called(ctx, originCity, destinationCity)
	return args.Get(0).([]*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) AvailableSeats(ctx context.Context, number string) ([]domain.SeatID, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatID), args.Error(1)
}

func apiTestFlight(number string) *domain.Flight {
	departure := time.Date(2026, 11, 5, 10, 0, 0, 0, time.UTC)
	return domain.NewFlight(number,
		domain.Airport{Code: "JFK", City: "New York", Country: "USA"},
		domain.Airport{Code: "LHR", City: "London", Country: "UK"},
		departure, departure.Add(12*time.Hour), 20000)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	summaries := []domain.FlightSummary{{Number: "FL101", TotalSeats: 180, AvailableSeats: 180}}
	mockService.On("List", c.Request.Context()).Return(summaries, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.FlightSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "FL101", response[0].Number)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "number", Value: "FL101"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL101", nil)

	mockService.On("GetByNumber", c.Request.Context(), "FL101").Return(apiTestFlight("FL101"), nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.FlightSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "FL101", response.Number)
	assert.Equal(t, 180, response.AvailableSeats)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "number", Value: "FL999"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL999", nil)

	mockService.On("GetByNumber", c.Request.Context(), "FL999").Return(nil, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=New+York&destination=London", nil)

	matches := []*domain.Flight{apiTestFlight("FL101"), apiTestFlight("FL107")}
	mockService.On("Search", c.Request.Context(), "New York", "London").Return(matches, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.FlightSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "FL101", response[0].Number)
	assert.Equal(t, "FL107", response[1].Number)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_MissingParams(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?origin=New+York", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightHandler_seats(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "number", Value: "FL101"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL101/seats", nil)

	seats := []domain.SeatID{"1A", "1B"}
	mockService.On("AvailableSeats", c.Request.Context(), "FL101").Return(seats, nil)

	handler.seats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		FlightNumber   string   `json:"flight_number"`
		AvailableSeats []string `json:"available_seats"`
		Count          int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "FL101", response.FlightNumber)
	assert.Equal(t, []string{"1A", "1B"}, response.AvailableSeats)
	assert.Equal(t, 2, response.Count)

	mockService.AssertExpectations(t)
}
