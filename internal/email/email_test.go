package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/kafka"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	event := kafka.BookingEvent{
		Type:             kafka.EventBookingCreated,
		BookingReference: "BRN4321",
		TicketNumber:     "TKT12345",
		FlightID:         1,
		SeatNumber:       "15A",
		SeatCount:        2,
		TotalPrice:       900,
	}

	msg := Compose("admin@alkawthar.com", event, "boarding_passes/TKT12345.png")
	assert.Equal(t, "Booking BRN4321 confirmed", msg.Subject)
	assert.Equal(t, "Ticket TKT12345, flight id 1, seat 15A, 2 seat(s), total 900.00.", msg.Body)
	assert.Equal(t, "boarding_passes/TKT12345.png", msg.Attachment)

	event.Type = kafka.EventBookingCancelled
	msg = Compose("admin@alkawthar.com", event, "")
	assert.Equal(t, "Booking BRN4321 cancelled", msg.Subject)
}

func TestSender_Send(t *testing.T) {
	var out bytes.Buffer
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(&out)
	t.Cleanup(func() { logrus.SetOutput(prev) })

	s := NewSender("noreply@alkawthar.com")
	require.NoError(t, s.Send(context.Background(), Message{To: "a@b.c", Subject: "hi"}))
	assert.Contains(t, out.String(), "send email")
	assert.Contains(t, out.String(), "a@b.c")

	out.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, Message{To: "a@b.c"}), context.Canceled)
	assert.Empty(t, out.String())
}
