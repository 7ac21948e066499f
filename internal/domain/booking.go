package domain

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Booking struct {
	ID               int64    `json:"id"`
	UserID           int64    `json:"user_id"`
	FlightID         int64    `json:"flight_id"`
	SeatCount        int      `json:"seat_count"`
	BookingDate      string   `json:"booking_date"`
	TotalPrice       float64  `json:"total_price"`
	BookingReference string   `json:"booking_reference"`
	Tickets          []Ticket `json:"tickets,omitempty" bun:"-"`
}

type Ticket struct {
	ID           int64        `json:"id"`
	TicketNumber string       `json:"ticket_number"`
	PassengerID  int64        `json:"passenger_id"`
	FlightID     int64        `json:"flight_id"`
	BookingID    int64        `json:"booking_id"`
	ClassID      int64        `json:"class_id"`
	TerminalID   int64        `json:"terminal_id"`
	SeatNumber   string       `json:"seat_number"`
	Price        float64      `json:"price"`
	Status       TicketStatus `json:"status"`
}

// BookingSummary is one row of the bookings listing.
type BookingSummary struct {
	ID               int64   `json:"id"`
	BookingReference string  `json:"booking_reference"`
	PassengerName    string  `json:"passenger_name"`
	FlightNumber     string  `json:"flight_number"`
	Route            string  `json:"route"`
	BookingDate      string  `json:"booking_date"`
	SeatCount        int     `json:"seat_count"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
}

// PassengerTicket is one row of a passenger's travel history.
type PassengerTicket struct {
	BookingReference string  `json:"booking_reference"`
	FlightNumber     string  `json:"flight_number"`
	Route            string  `json:"route"`
	BookingDate      string  `json:"booking_date"`
	TicketNumber     string  `json:"ticket_number"`
	ClassName        string  `json:"class_name"`
	SeatNumber       string  `json:"seat_number"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
}

// TicketDetails carries everything printed on a boarding pass.
type TicketDetails struct {
	TicketNumber     string  `json:"ticket_number"`
	BookingReference string  `json:"booking_reference"`
	PassengerName    string  `json:"passenger_name"`
	PassportNumber   string  `json:"passport_number"`
	FlightNumber     string  `json:"flight_number"`
	Route            string  `json:"route"`
	DepartureDate    string  `json:"departure_date"`
	DepartureTime    string  `json:"departure_time"`
	ClassName        string  `json:"class_name"`
	TerminalNumber   string  `json:"terminal_number"`
	SeatNumber       string  `json:"seat_number"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
}

type DashboardStats struct {
	TotalFlights   int     `json:"total_flights"`
	ActiveBookings int     `json:"active_bookings"`
	Passengers     int     `json:"passengers"`
	Revenue        float64 `json:"revenue"`
}
