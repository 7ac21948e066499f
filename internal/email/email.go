package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Message is a rendered notification. Delivery is logged only; there is no
// SMTP transport.
type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment string
}

type Sender struct {
	from string
}

func NewSender(from string) *Sender {
	return &Sender{from: from}
}

func Compose(to string, event kafka.BookingEvent, attachment string) Message {
	subject := fmt.Sprintf("Booking %s confirmed", event.BookingReference)
	body := fmt.Sprintf("Ticket %s, flight id %d, seat %s, %d seat(s), total %.2f.",
		event.TicketNumber, event.FlightID, event.SeatNumber, event.SeatCount, event.TotalPrice)
	if event.Type == kafka.EventBookingCancelled {
		subject = fmt.Sprintf("Booking %s cancelled", event.BookingReference)
		body = fmt.Sprintf("All tickets of booking %s were cancelled.", event.BookingReference)
	}
	return Message{To: to, Subject: subject, Body: body, Attachment: attachment}
}

func (s *Sender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"from":       s.from,
		"to":         msg.To,
		"subject":    msg.Subject,
		"attachment": msg.Attachment,
	}).Info("send email")
	return nil
}
