package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/Domenick1991/alkawthar/internal/repository"
	"github.com/sirupsen/logrus"
)

const DefaultMaxSeats = 10

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.BookingSummary, error)
	SearchBookings(ctx context.Context, term string) ([]domain.BookingSummary, error)
	TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error)
}

// Cache holds short seat locks. A lock is released as soon as the insert
// returns, so it only serializes concurrent inserts of one seat and does not
// stop a later booking of a seat that is already taken.
type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, seat string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ClassLookup interface {
	ClassByID(ctx context.Context, id int64) (*domain.Class, error)
}

type UserLookup interface {
	FirstID(ctx context.Context) (int64, error)
}

type BookingService struct {
	bookings           repository.BookingRepository
	classes            ClassLookup
	users              UserLookup
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
	pricing            Pricing
	maxSeats           int
	intN               func(n int) int
	now                func() time.Time
}

type CreateBookingInput struct {
	PassengerID int64  `json:"passenger_id"`
	FlightID    int64  `json:"flight_id"`
	ClassID     int64  `json:"class_id"`
	TerminalID  int64  `json:"terminal_id"`
	SeatNumber  string `json:"seat_number"`
	SeatCount   int    `json:"seat_count"`
	// UserID is taken from the session, never from the request body.
	UserID int64 `json:"-"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithPricing(p Pricing) BookingServiceOption {
	return func(s *BookingService) {
		s.pricing = p
	}
}

func WithMaxSeats(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxSeats = n
		}
	}
}

// WithRandom replaces the source of reference and ticket digits.
func WithRandom(intN func(n int) int) BookingServiceOption {
	return func(s *BookingService) {
		s.intN = intN
	}
}

// cache and producer may be nil: bookings then skip the seat lock and events.
func NewBookingService(
	bookings repository.BookingRepository,
	classes ClassLookup,
	users UserLookup,
	cache Cache,
	producer Producer,
	bookingTopic string,
	holdTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		classes:      classes,
		users:        users,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		holdTTL:      holdTTL,
		pricing:      DefaultPricing(),
		maxSeats:     DefaultMaxSeats,
		intN:         rand.IntN,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) validate(input *CreateBookingInput) error {
	input.SeatNumber = strings.ToUpper(strings.TrimSpace(input.SeatNumber))

	switch {
	case input.PassengerID <= 0:
		return domain.ErrSelectPassenger
	case input.FlightID <= 0:
		return domain.ErrSelectFlight
	case input.ClassID <= 0:
		return domain.ErrSelectClass
	case input.TerminalID <= 0:
		return domain.ErrSelectTerminal
	case input.SeatNumber == "":
		return domain.ErrEnterSeatNumber
	case input.SeatCount < 1 || input.SeatCount > s.maxSeats:
		return domain.ErrInvalidSeatCount
	}
	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	class, err := s.classes.ClassByID(ctx, input.ClassID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSelectClass
		}
		return nil, fmt.Errorf("resolve class: %w", err)
	}

	userID := input.UserID
	if userID == 0 {
		if userID, err = s.users.FirstID(ctx); err != nil {
			return nil, fmt.Errorf("resolve booking user: %w", err)
		}
	}

	unitPrice := s.pricing.UnitPrice(class.Name)
	booking := &domain.Booking{
		UserID:           userID,
		FlightID:         input.FlightID,
		SeatCount:        input.SeatCount,
		TotalPrice:       unitPrice * float64(input.SeatCount),
		BookingReference: s.bookingReference(),
	}
	ticket := &domain.Ticket{
		TicketNumber: s.ticketNumber(),
		PassengerID:  input.PassengerID,
		FlightID:     input.FlightID,
		ClassID:      input.ClassID,
		TerminalID:   input.TerminalID,
		SeatNumber:   input.SeatNumber,
		Price:        unitPrice,
		Status:       domain.TicketStatusConfirmed,
	}

	// serializes concurrent inserts only, see Cache
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, input.FlightID, input.SeatNumber, s.holdTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire seat lock: %w", err)
		}
		if !ok {
			return nil, domain.ErrSeatLocked
		}
	}

	err = s.bookings.Create(ctx, booking, ticket)
	s.releaseSeat(ctx, input.FlightID, input.SeatNumber)
	if err != nil {
		return nil, err
	}
	booking.Tickets = []domain.Ticket{*ticket}

	logrus.WithFields(logrus.Fields{
		"reference": booking.BookingReference,
		"ticket":    ticket.TicketNumber,
		"flight_id": booking.FlightID,
		"total":     booking.TotalPrice,
	}).Info("booking created")

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		logrus.WithError(err).WithField("reference", booking.BookingReference).Warn("failed to publish booking.created")
	}
	return booking, nil
}

// CancelBooking marks every ticket of the booking cancelled. Cancelling an
// already cancelled booking returns it unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	current, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	changed, err := s.bookings.CancelTickets(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return current, nil
	}

	updated, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingCancelled, updated); err != nil {
		logrus.WithError(err).WithField("reference", reference).Warn("failed to publish booking.cancelled")
	}
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.BookingSummary, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) SearchBookings(ctx context.Context, term string) ([]domain.BookingSummary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.bookings.List(ctx)
	}
	return s.bookings.Search(ctx, term)
}

func (s *BookingService) TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error) {
	return s.bookings.TicketDetails(ctx, ticketNumber)
}

func (s *BookingService) releaseSeat(ctx context.Context, flightID int64, seat string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.ReleaseSeatLock(ctx, flightID, seat); err != nil {
		logrus.WithError(err).WithField("flight_id", flightID).Warn("release seat lock")
	}
}

// BRN + 1000..9999
func (s *BookingService) bookingReference() string {
	return fmt.Sprintf("BRN%d", 1000+s.intN(9000))
}

// TKT + 10000..99999
func (s *BookingService) ticketNumber() string {
	return fmt.Sprintf("TKT%d", 10000+s.intN(90000))
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		EventID:          kafka.NewEventID(),
		Type:             eventType,
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID,
		FlightID:         booking.FlightID,
		SeatCount:        booking.SeatCount,
		TotalPrice:       booking.TotalPrice,
		Status:           string(domain.TicketStatusConfirmed),
		OccurredAt:       s.now().UTC(),
	}
	if eventType == kafka.EventBookingCancelled {
		event.Status = string(domain.TicketStatusCancelled)
	}
	if len(booking.Tickets) > 0 {
		t := booking.Tickets[0]
		event.TicketNumber = t.TicketNumber
		event.PassengerID = t.PassengerID
		event.SeatNumber = t.SeatNumber
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, booking.BookingReference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.BookingReference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
