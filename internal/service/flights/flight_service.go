package flights

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

type FlightUseCase interface {
	List(ctx context.Context, sort domain.FlightSort) ([]domain.Flight, error)
	Search(ctx context.Context, term string) ([]domain.Flight, error)
	Available(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

// OptionInvalidator drops cached selection lists that a new flight makes stale.
type OptionInvalidator interface {
	InvalidateOptions(ctx context.Context, kinds ...domain.OptionKind) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    OptionInvalidator
	producer Producer
	topic    string
	now      func() time.Time
}

type CreateFlightInput struct {
	FlightNumber         string `json:"flight_number"`
	OriginAirportID      int64  `json:"origin_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	DepartureDate        string `json:"departure_date"`
	DepartureTime        string `json:"departure_time"`
	ArrivalDate          string `json:"arrival_date"`
	ArrivalTime          string `json:"arrival_time"`
}

// cache and producer are optional.
func NewFlightService(repo repository.FlightRepository, cache OptionInvalidator, producer Producer, topic string) *FlightService {
	return &FlightService{repo: repo, cache: cache, producer: producer, topic: topic, now: time.Now}
}

func (s *FlightService) List(ctx context.Context, sort domain.FlightSort) ([]domain.Flight, error) {
	return s.repo.List(ctx, sort)
}

func (s *FlightService) Search(ctx context.Context, term string) ([]domain.Flight, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx, domain.FlightSort{})
	}
	return s.repo.Search(ctx, term)
}

func (s *FlightService) Available(ctx context.Context) ([]domain.Flight, error) {
	return s.repo.ListScheduled(ctx)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// NormalizeFlightNumber accepts "101", "ak101" or "AK 101" and returns
// "AK101". ok is false when anything but digits remains.
func NormalizeFlightNumber(input string) (string, bool) {
	digits := strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(input), domain.FlightNumberPrefix, ""))
	if digits == "" {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return domain.FlightNumberPrefix + digits, true
}

// Validate runs every check that needs no storage, in the order the user
// sees the messages.
func Validate(input CreateFlightInput) (domain.NewFlight, error) {
	input, number, err := checkFields(input)
	if err != nil {
		return domain.NewFlight{}, err
	}
	if err := checkDates(input); err != nil {
		return domain.NewFlight{}, err
	}
	return checkSchedule(input, number)
}

// checkFields trims the input and normalizes the flight number.
func checkFields(input CreateFlightInput) (CreateFlightInput, string, error) {
	input.FlightNumber = strings.TrimSpace(input.FlightNumber)
	input.DepartureDate = strings.TrimSpace(input.DepartureDate)
	input.DepartureTime = strings.TrimSpace(input.DepartureTime)
	input.ArrivalDate = strings.TrimSpace(input.ArrivalDate)
	input.ArrivalTime = strings.TrimSpace(input.ArrivalTime)

	if input.FlightNumber == "" || input.OriginAirportID <= 0 || input.DestinationAirportID <= 0 ||
		input.DepartureDate == "" || input.ArrivalDate == "" ||
		input.DepartureTime == "" || input.ArrivalTime == "" {
		return input, "", domain.ErrAllFieldsRequired
	}

	number, ok := NormalizeFlightNumber(input.FlightNumber)
	if !ok {
		return input, "", domain.ErrInvalidFlightNum
	}
	return input, number, nil
}

func checkDates(input CreateFlightInput) error {
	for _, d := range []string{input.DepartureDate, input.ArrivalDate} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return domain.ErrDateFormat
		}
	}
	return nil
}

func checkSchedule(input CreateFlightInput, number string) (domain.NewFlight, error) {
	if input.OriginAirportID == input.DestinationAirportID {
		return domain.NewFlight{}, domain.ErrSameAirports
	}

	departure, err := time.Parse(dateTimeLayout, input.DepartureDate+" "+input.DepartureTime)
	if err != nil {
		return domain.NewFlight{}, domain.ErrInvalidDateTime(err)
	}
	arrival, err := time.Parse(dateTimeLayout, input.ArrivalDate+" "+input.ArrivalTime)
	if err != nil {
		return domain.NewFlight{}, domain.ErrInvalidDateTime(err)
	}
	if !arrival.After(departure) {
		return domain.NewFlight{}, domain.ErrArrivalBeforeDep
	}

	return domain.NewFlight{
		FlightNumber:         number,
		OriginAirportID:      input.OriginAirportID,
		DestinationAirportID: input.DestinationAirportID,
		DepartureDate:        input.DepartureDate,
		DepartureTime:        departure.Format("15:04"),
		ArrivalDate:          input.ArrivalDate,
		ArrivalTime:          arrival.Format("15:04"),
	}, nil
}

// validate interleaves the storage lookups with the pure checks: a duplicate
// is reported before date format, unknown airports before same airports.
// The repository repeats the duplicate and airport checks inside its
// transaction.
func (s *FlightService) validate(ctx context.Context, input CreateFlightInput) (domain.NewFlight, error) {
	input, number, err := checkFields(input)
	if err != nil {
		return domain.NewFlight{}, err
	}

	dup, err := s.repo.Exists(ctx, number, input.DepartureDate)
	if err != nil {
		return domain.NewFlight{}, err
	}
	if dup {
		return domain.NewFlight{}, domain.ErrFlightExists(number, input.DepartureDate)
	}

	if err := checkDates(input); err != nil {
		return domain.NewFlight{}, err
	}

	ok, err := s.repo.AirportExists(ctx, input.OriginAirportID)
	if err != nil {
		return domain.NewFlight{}, err
	}
	if !ok {
		return domain.NewFlight{}, domain.ErrInvalidOrigin
	}
	ok, err = s.repo.AirportExists(ctx, input.DestinationAirportID)
	if err != nil {
		return domain.NewFlight{}, err
	}
	if !ok {
		return domain.NewFlight{}, domain.ErrInvalidDest
	}

	return checkSchedule(input, number)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	nf, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Create(ctx, nf)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"flight_id": flight.ID,
		"number":    flight.FlightNumber,
		"departure": flight.Departure(),
	}).Info("flight created")

	if s.cache != nil {
		if err := s.cache.InvalidateOptions(ctx, domain.OptionFlights); err != nil {
			logrus.WithError(err).Warn("invalidate cached flight options")
		}
	}
	if s.producer != nil && s.topic != "" {
		event := kafka.FlightEvent{
			EventID:       kafka.NewEventID(),
			Type:          kafka.EventFlightCreated,
			FlightID:      flight.ID,
			FlightNumber:  flight.FlightNumber,
			Origin:        flight.OriginCode,
			Destination:   flight.DestinationCode,
			DepartureDate: flight.DepartureDate,
			DepartureTime: flight.DepartureTime,
			OccurredAt:    s.now().UTC(),
		}
		if err := s.producer.Publish(ctx, s.topic, flight.FlightNumber, event); err != nil {
			logrus.WithError(err).WithField("number", flight.FlightNumber).Warn("failed to publish flight.created")
		}
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)
