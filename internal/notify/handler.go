package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/email"
	"github.com/Domenick1991/alkawthar/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type TicketSource interface {
	TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error)
}

type UserSource interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type QRWriter interface {
	WriteFile(d domain.TicketDetails, dir string) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Handler turns booking events into customer notifications. A confirmed
// booking gets its boarding pass rendered to qrDir and attached.
type Handler struct {
	tickets TicketSource
	users   UserSource
	qr      QRWriter
	mailer  Mailer
	qrDir   string

	deliveries DeliveryLog
}

type Option func(*Handler)

// WithDeliveryLog replaces the default in-process log, e.g. with a Redis
// backed one shared by every worker replica.
func WithDeliveryLog(l DeliveryLog) Option {
	return func(h *Handler) {
		if l != nil {
			h.deliveries = l
		}
	}
}

func NewHandler(tickets TicketSource, users UserSource, qr QRWriter, mailer Mailer, qrDir string, opts ...Option) *Handler {
	h := &Handler{
		tickets:    tickets,
		users:      users,
		qr:         qr,
		mailer:     mailer,
		qrDir:      qrDir,
		deliveries: NewMemoryLog(DefaultDeliveryCapacity),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Handle(ctx context.Context, msg kafkago.Message) error {
	event, err := kafka.DecodeBookingEvent(msg)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"event_id":  event.EventID,
		"type":      event.Type,
		"reference": event.BookingReference,
	})

	if event.Type != kafka.EventBookingCreated && event.Type != kafka.EventBookingCancelled {
		log.Debug("ignore event")
		return nil
	}
	if h.delivered(ctx, log, event.EventID) {
		log.Debug("duplicate event")
		return nil
	}

	user, err := h.users.GetByID(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("recipient of %s: %w", event.BookingReference, err)
	}

	var attachment string
	if event.Type == kafka.EventBookingCreated && event.TicketNumber != "" && h.qr != nil {
		details, err := h.tickets.TicketDetails(ctx, event.TicketNumber)
		if err != nil {
			return fmt.Errorf("ticket %s: %w", event.TicketNumber, err)
		}
		attachment, err = h.qr.WriteFile(*details, h.qrDir)
		if err != nil {
			return fmt.Errorf("boarding pass %s: %w", event.TicketNumber, err)
		}
	}

	if err := h.mailer.Send(ctx, email.Compose(user.Email, event, attachment)); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	h.markDelivered(ctx, log, event.EventID)
	log.Info("notification sent")
	return nil
}

// A failing delivery log never blocks a notification: a lookup error counts
// as not delivered.
func (h *Handler) delivered(ctx context.Context, log *logrus.Entry, id string) bool {
	if id == "" {
		return false
	}
	ok, err := h.deliveries.Delivered(ctx, id)
	if err != nil {
		log.WithError(err).Warn("delivery log lookup failed")
		return false
	}
	return ok
}

func (h *Handler) markDelivered(ctx context.Context, log *logrus.Entry, id string) {
	if id == "" {
		return
	}
	if err := h.deliveries.MarkDelivered(ctx, id); err != nil {
		log.WithError(err).Warn("delivery log update failed")
	}
}
