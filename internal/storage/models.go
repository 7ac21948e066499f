package storage

import "github.com/uptrace/bun"

type Country struct {
	bun.BaseModel `bun:"table:countries"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Code string `bun:"code,notnull,unique"`
	Name string `bun:"name,notnull"`
}

type Gender struct {
	bun.BaseModel `bun:"table:genders"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}

type Class struct {
	bun.BaseModel `bun:"table:classes"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Name        string `bun:"name,notnull,unique"`
	Description string `bun:"description"`
}

type PlaneType struct {
	bun.BaseModel `bun:"table:plane_types"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Name         string `bun:"name,notnull,unique"`
	Manufacturer string `bun:"manufacturer"`
	Model        string `bun:"model"`
}

type Branch struct {
	bun.BaseModel `bun:"table:branches"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Code        string `bun:"code,notnull,unique"`
	Name        string `bun:"name,notnull"`
	Address     string `bun:"address"`
	PhoneNumber string `bun:"phone_number"`
}

// Terminal numbers are not unique on purpose: the same number exists at
// many airports.
type Terminal struct {
	bun.BaseModel `bun:"table:terminals"`

	ID     int64  `bun:"id,pk,autoincrement"`
	Number string `bun:"number,notnull"`
	Name   string `bun:"name"`
}

type Airport struct {
	bun.BaseModel `bun:"table:airports"`

	ID          int64  `bun:"id,pk,autoincrement"`
	AirportCode string `bun:"airport_code,notnull,unique"`
	Name        string `bun:"name,notnull"`
	CountryID   int64  `bun:"country_id,notnull"`
}

type Plane struct {
	bun.BaseModel `bun:"table:planes"`

	ID          int64  `bun:"id,pk,autoincrement"`
	TailNumber  string `bun:"tail_number,notnull,unique"`
	PlaneTypeID int64  `bun:"plane_type_id,notnull"`
}

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Username string `bun:"username,notnull,unique"`
	Password string `bun:"password,notnull"`
	Email    string `bun:"email"`
	IsAdmin  bool   `bun:"is_admin,notnull"`
}

type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	ID             int64  `bun:"id,pk,autoincrement"`
	EmployeeNumber string `bun:"employee_number,notnull,unique"`
	Name           string `bun:"name,notnull"`
	Address        string `bun:"address"`
	PhoneNumber    string `bun:"phone_number"`
	Job            string `bun:"job"`
	BranchID       int64  `bun:"branch_id,notnull"`
}

type Passenger struct {
	bun.BaseModel `bun:"table:passengers"`

	ID                   int64  `bun:"id,pk,autoincrement"`
	PassportNumber       string `bun:"passport_number,notnull,unique"`
	Name                 string `bun:"name,notnull"`
	GenderID             int64  `bun:"gender_id,notnull"`
	NationalityCountryID int64  `bun:"nationality_country_id,notnull"`
}

type PlaneAvailableClass struct {
	bun.BaseModel `bun:"table:plane_available_classes"`

	PlaneTypeID int64 `bun:"plane_type_id,pk"`
	ClassID     int64 `bun:"class_id,pk"`
}

type AirportTerminal struct {
	bun.BaseModel `bun:"table:airport_terminals"`

	AirportID  int64 `bun:"airport_id,pk"`
	TerminalID int64 `bun:"terminal_id,pk"`
}

// Flight has no unique key on (flight_number, departure_date); the flight
// workflow checks it inside the insert transaction.
type Flight struct {
	bun.BaseModel `bun:"table:flights"`

	ID                   int64  `bun:"id,pk,autoincrement"`
	FlightNumber         string `bun:"flight_number,notnull"`
	PlaneID              int64  `bun:"plane_id,notnull"`
	BranchID             int64  `bun:"branch_id,notnull"`
	OriginAirportID      int64  `bun:"origin_airport_id,notnull"`
	DestinationAirportID int64  `bun:"destination_airport_id,notnull"`
	DepartureDate        string `bun:"departure_date,notnull"`
	DepartureTime        string `bun:"departure_time,notnull"`
	ArrivalDate          string `bun:"arrival_date,notnull"`
	ArrivalTime          string `bun:"arrival_time,notnull"`
	Status               string `bun:"status,notnull,default:'scheduled'"`
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID               int64   `bun:"id,pk,autoincrement"`
	UserID           int64   `bun:"user_id,notnull"`
	FlightID         int64   `bun:"flight_id,notnull"`
	SeatCount        int     `bun:"seat_count,notnull"`
	BookingDate      string  `bun:"booking_date,notnull"`
	TotalPrice       float64 `bun:"total_price,notnull"`
	BookingReference string  `bun:"booking_reference,notnull,unique"`
}

type Ticket struct {
	bun.BaseModel `bun:"table:tickets"`

	ID           int64   `bun:"id,pk,autoincrement"`
	TicketNumber string  `bun:"ticket_number,notnull,unique"`
	PassengerID  int64   `bun:"passenger_id,notnull"`
	FlightID     int64   `bun:"flight_id,notnull"`
	BookingID    int64   `bun:"booking_id,notnull"`
	ClassID      int64   `bun:"class_id,notnull"`
	TerminalID   int64   `bun:"terminal_id,notnull"`
	SeatNumber   string  `bun:"seat_number,notnull"`
	Price        float64 `bun:"price,notnull"`
	Status       string  `bun:"status,notnull,default:'confirmed'"`
}

type CrewAssignment struct {
	bun.BaseModel `bun:"table:crew_assignments"`

	ID         int64  `bun:"id,pk,autoincrement"`
	EmployeeID int64  `bun:"employee_id,notnull,unique:crew_employee_flight"`
	FlightID   int64  `bun:"flight_id,notnull,unique:crew_employee_flight"`
	Role       string `bun:"role"`
}
