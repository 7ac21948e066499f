package passengers

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Tickets(ctx context.Context, passengerID int64) ([]domain.PassengerTicket, error) {
	args := m.Called(ctx, passengerID)
	return args.Get(0).([]domain.PassengerTicket), args.Error(1)
}

func (m *MockPassengerRepository) Create(ctx context.Context, in domain.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Update(ctx context.Context, id int64, in domain.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateOptions(ctx context.Context, kinds ...domain.OptionKind) error {
	args := m.Called(ctx, kinds)
	return args.Error(0)
}

func TestPassengerService_Create(t *testing.T) {
	repo := &MockPassengerRepository{}
	cache := &MockCache{}
	service := NewPassengerService(repo, cache)
	ctx := context.Background()

	normalized := domain.PassengerInput{PassportNumber: "X0000001", Name: "Sara Nasser", GenderID: 2, NationalityCountryID: 5}
	repo.On("Create", ctx, normalized).Return(&domain.Passenger{ID: 6, PassportNumber: "X0000001", Name: "Sara Nasser"}, nil).Once()
	cache.On("InvalidateOptions", ctx, []domain.OptionKind{domain.OptionPassengers}).Return(nil).Once()

	p, err := service.Create(ctx, domain.PassengerInput{
		PassportNumber: " x0000001 ", Name: " Sara Nasser", GenderID: 2, NationalityCountryID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), p.ID)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestPassengerService_Create_RequiresAllFields(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo, nil)

	testCases := []domain.PassengerInput{
		{Name: "A", GenderID: 1, NationalityCountryID: 1},
		{PassportNumber: "X1", GenderID: 1, NationalityCountryID: 1},
		{PassportNumber: "X1", Name: "A", NationalityCountryID: 1},
		{PassportNumber: "X1", Name: "A", GenderID: 1},
	}
	for _, in := range testCases {
		_, err := service.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrAllFieldsRequired)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPassengerService_Create_DuplicatePassport(t *testing.T) {
	repo := &MockPassengerRepository{}
	cache := &MockCache{}
	service := NewPassengerService(repo, cache)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil, domain.ErrPassportExists).Once()

	_, err := service.Create(ctx, domain.PassengerInput{PassportNumber: "P12345678", Name: "A", GenderID: 1, NationalityCountryID: 1})
	assert.ErrorIs(t, err, domain.ErrPassportExists)
	cache.AssertNotCalled(t, "InvalidateOptions", mock.Anything, mock.Anything)
}

func TestPassengerService_Update(t *testing.T) {
	repo := &MockPassengerRepository{}
	cache := &MockCache{}
	service := NewPassengerService(repo, cache)
	ctx := context.Background()

	in := domain.PassengerInput{Name: "Omar K.", GenderID: 1, NationalityCountryID: 3}
	repo.On("Update", ctx, int64(3), in).Return(&domain.Passenger{ID: 3, Name: "Omar K."}, nil).Once()
	cache.On("InvalidateOptions", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	p, err := service.Update(ctx, 3, in)
	require.NoError(t, err)
	assert.Equal(t, "Omar K.", p.Name)

	_, err = service.Update(ctx, 3, domain.PassengerInput{Name: " ", GenderID: 1, NationalityCountryID: 3})
	assert.ErrorIs(t, err, domain.ErrAllFieldsRequired)
	repo.AssertExpectations(t)
}

func TestPassengerService_SearchAndTickets(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo, nil)
	ctx := context.Background()

	all := []domain.Passenger{{ID: 1, Name: "Aisha Rahman"}, {ID: 2, Name: "Layla Ahmed"}}
	repo.On("List", ctx).Return(all, nil).Once()
	repo.On("Search", ctx, "layla").Return(all[1:], nil).Once()
	repo.On("GetByID", ctx, int64(1)).Return(&all[0], nil).Once()
	repo.On("Tickets", ctx, int64(1)).Return([]domain.PassengerTicket{{TicketNumber: "TKT-003"}}, nil).Once()
	repo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrPassengerNotFound).Once()

	got, err := service.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = service.Search(ctx, "layla")
	require.NoError(t, err)
	assert.Equal(t, all[1:], got)

	tickets, err := service.Tickets(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	// у неизвестного пассажира нет истории, а не пустой список
	_, err = service.Tickets(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrPassengerNotFound)
	repo.AssertExpectations(t)
}
