package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/i18n"
	authsvc "github.com/Domenick1991/alkawthar/internal/service/auth"
	"github.com/Domenick1991/alkawthar/internal/ticketqr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*authsvc.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authsvc.Session), args.Error(1)
}

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

type MockReferenceUseCase struct {
	mock.Mock
}

func (m *MockReferenceUseCase) Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Option), args.Error(1)
}

func (m *MockReferenceUseCase) ResolveLabel(ctx context.Context, kind domain.OptionKind, label string) (int64, error) {
	args := m.Called(ctx, kind, label)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthHandler_login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(mockService, english()).Register(router.Group("/api/auth"))

	session := &authsvc.Session{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC),
		User:      &domain.User{ID: 1, Username: "admin", IsAdmin: true},
	}
	mockService.On("Login", mock.Anything, "admin", "password123").Return(session, nil).Once()
	mockService.On("Login", mock.Anything, "admin", "wrong").Return(nil, domain.ErrInvalidCredentials).Once()
	mockService.On("Login", mock.Anything, "", "").Return(nil, domain.ErrMissingCredential).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", loginRequest{Username: "admin", Password: "password123"}))
	assert.Equal(t, http.StatusOK, w.Code)
	var got authsvc.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.token", got.Token)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", loginRequest{Username: "admin", Password: "wrong"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", loginRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestDashboardHandler_stats(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDashboardHandler(mockService, i18n.NewContext("en", "dark")).Register(router.Group("/api/dashboard"))

	stats := &domain.DashboardStats{TotalFlights: 8, ActiveBookings: 2, Passengers: 5, Revenue: 1350}
	mockService.On("Stats", mock.Anything).Return(stats, nil).Twice()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Stats     domain.DashboardStats `json:"stats"`
		Title     string                `json:"title"`
		Theme     string                `json:"theme"`
		Direction string                `json:"direction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, *stats, response.Stats)
	assert.Equal(t, "Al Kawthar Flights", response.Title)
	assert.Equal(t, "dark", response.Theme)
	assert.Equal(t, "ltr", response.Direction)

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	req.Header.Set("Accept-Language", "ar-SA")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "طيران الكوثر", response.Title)
	assert.Equal(t, "rtl", response.Direction)

	mockService.AssertExpectations(t)
}

func TestReferenceHandler(t *testing.T) {
	mockService := &MockReferenceUseCase{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewReferenceHandler(mockService, english()).Register(router.Group("/api/reference"))

	classes := []domain.Option{{ID: 1, Label: "Economy - $450"}, {ID: 2, Label: "Business - $850"}}
	mockService.On("Options", mock.Anything, domain.OptionClasses).Return(classes, nil).Once()
	mockService.On("Options", mock.Anything, domain.OptionKind("planets")).
		Return(nil, domain.ErrInvalidSelection("option kind", "planets")).Once()
	mockService.On("ResolveLabel", mock.Anything, domain.OptionClasses, "Business - $850").Return(int64(2), nil).Once()
	mockService.On("ResolveLabel", mock.Anything, domain.OptionClasses, "Gold").Return(int64(0), domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/classes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var options []domain.Option
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Equal(t, classes, options)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/planets", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/resolve?kind=classes&label=Business+-+%24850", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var option domain.Option
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &option))
	assert.Equal(t, int64(2), option.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/reference/resolve?kind=classes&label=Gold", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var failure map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	assert.Equal(t, "Unknown classes: Gold", failure["error"])

	mockService.AssertExpectations(t)
}

func TestTicketHandler(t *testing.T) {
	mockService := &MockBookingUseCase{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewTicketHandler(mockService, ticketqr.NewGenerator(128), english()).Register(router.Group("/api/tickets"))

	details := &domain.TicketDetails{TicketNumber: "TKT-001", BookingReference: "BRN001", FlightNumber: "AK101"}
	mockService.On("TicketDetails", mock.Anything, "TKT-001").Return(details, nil).Twice()
	mockService.On("TicketDetails", mock.Anything, "TKT-404").Return(nil, domain.ErrTicketNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/tickets/TKT-001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/tickets/TKT-001/qr", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), w.Body.Bytes()[:4])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/tickets/TKT-404/qr", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{domain.ErrSelectFlight, http.StatusBadRequest},
		{domain.ErrFlightExists("AK101", "2024-02-01"), http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", domain.ErrPassengerNotFound), http.StatusNotFound},
		{domain.ErrTicketNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: UNIQUE constraint failed", domain.ErrDuplicate), http.StatusConflict},
		{domain.ErrSeatLocked, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{errors.New("database is locked"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.status, statusOf(tc.err), tc.err.Error())
	}
}
