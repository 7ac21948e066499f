package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPassengerUseCase struct {
	mock.Mock
}

func (m *MockPassengerUseCase) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Tickets(ctx context.Context, id int64) ([]domain.PassengerTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassengerTicket), args.Error(1)
}

func (m *MockPassengerUseCase) Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerUseCase) Update(ctx context.Context, id int64, input domain.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func newPassengerRouter(service *MockPassengerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPassengerHandler(service, english()).Register(router.Group("/api/passengers"))
	return router
}

func jsonRequest(method, target string, v any) *http.Request {
	body, _ := json.Marshal(v)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPassengerHandler_create(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	router := newPassengerRouter(mockService)

	input := domain.PassengerInput{PassportNumber: "X0000001", Name: "Sara Nasser", GenderID: 2, NationalityCountryID: 5}
	mockService.On("Create", mock.Anything, input).Return(&domain.Passenger{ID: 6, PassportNumber: "X0000001", Name: "Sara Nasser"}, nil).Once()
	mockService.On("Create", mock.Anything, input).Return(nil, domain.ErrPassportExists).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/passengers", input))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/passengers", input))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var failure map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Equal(t, "Passport number already exists", failure["error"])

	mockService.AssertExpectations(t)
}

func TestPassengerHandler_update(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	router := newPassengerRouter(mockService)

	input := domain.PassengerInput{Name: "Omar K.", GenderID: 1, NationalityCountryID: 3}
	mockService.On("Update", mock.Anything, int64(3), input).Return(&domain.Passenger{ID: 3, Name: "Omar K."}, nil).Once()
	mockService.On("Update", mock.Anything, int64(77), input).Return(nil, domain.ErrPassengerNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/passengers/3", input))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/passengers/77", input))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestPassengerHandler_reads(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	router := newPassengerRouter(mockService)

	all := []domain.Passenger{{ID: 2, Name: "Aisha Rahman"}, {ID: 4, Name: "Layla Ahmed"}}
	mockService.On("List", mock.Anything).Return(all, nil).Once()
	mockService.On("Search", mock.Anything, "Layla").Return(all[1:], nil).Once()
	mockService.On("GetByID", mock.Anything, int64(2)).Return(&all[0], nil).Once()
	mockService.On("Tickets", mock.Anything, int64(2)).Return([]domain.PassengerTicket{{TicketNumber: "TKT-003", Route: "RUH → DXB"}}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/passengers", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/passengers/search?q=Layla", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var found []domain.Passenger
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, all[1:], found)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/passengers/2", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/passengers/2/tickets", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var tickets []domain.PassengerTicket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, "TKT-003", tickets[0].TicketNumber)

	mockService.AssertExpectations(t)
}
