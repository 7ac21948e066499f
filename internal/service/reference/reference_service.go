package reference

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/Domenick1991/alkawthar/internal/service/booking"
	"github.com/sirupsen/logrus"
)

type ReferenceUseCase interface {
	Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)
	ResolveLabel(ctx context.Context, kind domain.OptionKind, label string) (int64, error)
}

type OptionCache interface {
	GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)
	SetOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option) error
}

type PassengerLister interface {
	List(ctx context.Context) ([]domain.Passenger, error)
}

type ScheduledFlights interface {
	ListScheduled(ctx context.Context) ([]domain.Flight, error)
}

type ReferenceService struct {
	refs       repository.ReferenceRepository
	passengers PassengerLister
	flights    ScheduledFlights
	cache      OptionCache
	pricing    booking.Pricing
}

// cache may be nil.
func NewReferenceService(
	refs repository.ReferenceRepository,
	passengers PassengerLister,
	flights ScheduledFlights,
	cache OptionCache,
	pricing booking.Pricing,
) *ReferenceService {
	return &ReferenceService{refs: refs, passengers: passengers, flights: flights, cache: cache, pricing: pricing}
}

func (s *ReferenceService) Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidSelection("option kind", string(kind))
	}

	if s.cache != nil {
		cached, err := s.cache.GetOptions(ctx, kind)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logrus.WithError(err).WithField("kind", kind).Warn("read cached options")
		}
	}

	options, err := s.load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s options: %w", kind, err)
	}

	if s.cache != nil {
		if err := s.cache.SetOptions(ctx, kind, options); err != nil {
			logrus.WithError(err).WithField("kind", kind).Warn("cache options")
		}
	}
	return options, nil
}

// ResolveLabel finds the option whose label equals label exactly. No
// trimming or case folding is applied.
func (s *ReferenceService) ResolveLabel(ctx context.Context, kind domain.OptionKind, label string) (int64, error) {
	options, err := s.Options(ctx, kind)
	if err != nil {
		return 0, err
	}
	for _, o := range options {
		if o.Label == label {
			return o.ID, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (s *ReferenceService) load(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	options := make([]domain.Option, 0)

	switch kind {
	case domain.OptionCountries:
		items, err := s.refs.Countries(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range items {
			options = append(options, domain.Option{ID: c.ID, Label: c.Name})
		}
	case domain.OptionGenders:
		items, err := s.refs.Genders(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range items {
			options = append(options, domain.Option{ID: g.ID, Label: g.Name})
		}
	case domain.OptionClasses:
		items, err := s.refs.Classes(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range items {
			options = append(options, domain.Option{ID: c.ID, Label: ClassLabel(c.Name, s.pricing.UnitPrice(c.Name))})
		}
	case domain.OptionTerminals:
		items, err := s.refs.Terminals(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range items {
			options = append(options, domain.Option{ID: t.ID, Label: t.Number + " - " + t.Name})
		}
	case domain.OptionAirports:
		items, err := s.refs.Airports(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range items {
			options = append(options, domain.Option{ID: a.ID, Label: a.AirportCode + " - " + a.Name})
		}
	case domain.OptionPassengers:
		items, err := s.passengers.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range items {
			options = append(options, domain.Option{ID: p.ID, Label: p.PassportNumber + " - " + p.Name})
		}
	case domain.OptionFlights:
		items, err := s.flights.ListScheduled(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range items {
			options = append(options, domain.Option{ID: f.ID, Label: FlightLabel(f)})
		}
	}
	return options, nil
}

// ClassLabel renders "Economy - $450".
func ClassLabel(name string, price float64) string {
	return name + " - $" + strconv.FormatFloat(price, 'f', -1, 64)
}

// FlightLabel renders "AK101 - DXB → RUH (2024-02-01 08:00)".
func FlightLabel(f domain.Flight) string {
	return fmt.Sprintf("%s - %s → %s (%s)", f.FlightNumber, f.OriginCode, f.DestinationCode, f.Departure())
}

var _ ReferenceUseCase = (*ReferenceService)(nil)
