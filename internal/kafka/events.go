package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventFlightCreated    = "flight.created"
)

type BookingEvent struct {
	EventID          string    `json:"event_id"`
	Type             string    `json:"type"`
	BookingReference string    `json:"booking_reference"`
	TicketNumber     string    `json:"ticket_number,omitempty"`
	UserID           int64     `json:"user_id"`
	FlightID         int64     `json:"flight_id"`
	PassengerID      int64     `json:"passenger_id,omitempty"`
	SeatNumber       string    `json:"seat_number,omitempty"`
	SeatCount        int       `json:"seat_count"`
	TotalPrice       float64   `json:"total_price"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type FlightEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	FlightID      int64     `json:"flight_id"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	DepartureTime string    `json:"departure_time"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewEventID returns the identifier consumers use to drop redelivered events.
func NewEventID() string {
	return uuid.NewString()
}

func DecodeBookingEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("decode booking event at offset %d: %w", msg.Offset, err)
	}
	return event, nil
}
