package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/Domenick1991/alkawthar/internal/service/booking"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Option), args.Error(1)
}

func (m *MockCache) SetOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option) error {
	args := m.Called(ctx, kind, options)
	return args.Error(0)
}

type MockPassengerLister struct {
	mock.Mock
}

func (m *MockPassengerLister) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

// newSeededService wires the service to the demo database.
func newSeededService(t *testing.T, cache OptionCache) *ReferenceService {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.CreateSchema(ctx, db))
	require.NoError(t, storage.Seed(ctx, db))

	return NewReferenceService(
		repository.NewReferenceRepository(db),
		repository.NewPassengerRepository(db),
		repository.NewFlightRepository(db),
		cache,
		booking.DefaultPricing(),
	)
}

func TestReferenceService_Labels(t *testing.T) {
	s := newSeededService(t, nil)
	ctx := context.Background()

	testCases := []struct {
		kind  domain.OptionKind
		count int
		label string
	}{
		{domain.OptionCountries, 25, "Australia"},
		{domain.OptionGenders, 2, "Female"},
		{domain.OptionClasses, 3, "Economy - $450"},
		{domain.OptionTerminals, 5, "1 - Terminal 1"},
		{domain.OptionAirports, 8, "ALY - Alexandria International Airport"},
		{domain.OptionPassengers, 5, "P87654321 - Aisha Rahman"},
		{domain.OptionFlights, 8, "AK101 - DXB → RUH (2024-02-01 08:00)"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			options, err := s.Options(ctx, tc.kind)
			require.NoError(t, err)
			require.Len(t, options, tc.count)
			assert.Equal(t, tc.label, options[0].Label)
			assert.NotZero(t, options[0].ID)
		})
	}
}

func TestReferenceService_ResolveLabel(t *testing.T) {
	s := newSeededService(t, nil)
	ctx := context.Background()

	id, err := s.ResolveLabel(ctx, domain.OptionAirports, "DXB - Dubai International Airport")
	require.NoError(t, err)
	assert.NotZero(t, id)

	id, err = s.ResolveLabel(ctx, domain.OptionClasses, "Business - $850")
	require.NoError(t, err)
	assert.NotZero(t, id)

	// точное совпадение, без нормализации
	_, err = s.ResolveLabel(ctx, domain.OptionAirports, "dxb - dubai international airport")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.ResolveLabel(ctx, domain.OptionAirports, " DXB - Dubai International Airport")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.ResolveLabel(ctx, "planets", "Mars")
	assert.True(t, domain.IsValidation(err))
}

func TestReferenceService_CacheHit(t *testing.T) {
	cache := &MockCache{}
	passengers := &MockPassengerLister{}
	s := NewReferenceService(nil, passengers, nil, cache, booking.DefaultPricing())
	ctx := context.Background()

	cached := []domain.Option{{ID: 1, Label: "P12345678 - Mohammed Hassan"}}
	cache.On("GetOptions", ctx, domain.OptionPassengers).Return(cached, nil).Once()

	got, err := s.Options(ctx, domain.OptionPassengers)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	passengers.AssertNotCalled(t, "List", mock.Anything)
	cache.AssertExpectations(t)
}

func TestReferenceService_CacheMissAndFailure(t *testing.T) {
	cache := &MockCache{}
	passengers := &MockPassengerLister{}
	s := NewReferenceService(nil, passengers, nil, cache, booking.DefaultPricing())
	ctx := context.Background()

	list := []domain.Passenger{{ID: 4, PassportNumber: "P44332211", Name: "Layla Ahmed"}}
	expected := []domain.Option{{ID: 4, Label: "P44332211 - Layla Ahmed"}}

	cache.On("GetOptions", ctx, domain.OptionPassengers).Return(nil, errors.New("redis down")).Once()
	passengers.On("List", ctx).Return(list, nil).Once()
	cache.On("SetOptions", ctx, domain.OptionPassengers, expected).Return(errors.New("redis down")).Once()

	got, err := s.Options(ctx, domain.OptionPassengers)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	cache.AssertExpectations(t)
	passengers.AssertExpectations(t)
}

func TestClassLabel(t *testing.T) {
	assert.Equal(t, "First - $1200", ClassLabel("First", 1200))
	assert.Equal(t, "Promo - $99.5", ClassLabel("Promo", 99.5))
}
