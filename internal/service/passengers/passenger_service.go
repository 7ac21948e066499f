package passengers

import (
	"context"
	"strings"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/sirupsen/logrus"
)

type PassengerUseCase interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Search(ctx context.Context, term string) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Tickets(ctx context.Context, id int64) ([]domain.PassengerTicket, error)
	Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, input domain.PassengerInput) (*domain.Passenger, error)
}

type OptionInvalidator interface {
	InvalidateOptions(ctx context.Context, kinds ...domain.OptionKind) error
}

type PassengerService struct {
	repo  repository.PassengerRepository
	cache OptionInvalidator
}

func NewPassengerService(repo repository.PassengerRepository, cache OptionInvalidator) *PassengerService {
	return &PassengerService{repo: repo, cache: cache}
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

func (s *PassengerService) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, term)
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Tickets(ctx context.Context, id int64) ([]domain.PassengerTicket, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Tickets(ctx, id)
}

func (s *PassengerService) Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error) {
	input.PassportNumber = strings.ToUpper(strings.TrimSpace(input.PassportNumber))
	input.Name = strings.TrimSpace(input.Name)
	if input.PassportNumber == "" || input.Name == "" || input.GenderID <= 0 || input.NationalityCountryID <= 0 {
		return nil, domain.ErrAllFieldsRequired
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"passenger_id": p.ID, "passport": p.PassportNumber}).Info("passenger created")
	s.invalidate(ctx)
	return p, nil
}

// Update ignores input.PassportNumber.
func (s *PassengerService) Update(ctx context.Context, id int64, input domain.PassengerInput) (*domain.Passenger, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.GenderID <= 0 || input.NationalityCountryID <= 0 {
		return nil, domain.ErrAllFieldsRequired
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *PassengerService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOptions(ctx, domain.OptionPassengers); err != nil {
		logrus.WithError(err).Warn("invalidate cached passenger options")
	}
}

var _ PassengerUseCase = (*PassengerService)(nil)
