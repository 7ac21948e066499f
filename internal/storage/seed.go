package storage

import (
	"context"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
)

const seedPassword = "password123"

// Seed inserts reference and demo data. Rows with a natural key are inserted
// with conflict-ignore, the rest only when their table is still empty, so
// running Seed again changes nothing.
func Seed(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		s := seeder{tx: tx}
		steps := []struct {
			name string
			fn   func(context.Context) error
		}{
			{"reference data", s.reference},
			{"airports", s.airports},
			{"planes", s.planes},
			{"employees", s.employees},
			{"passengers", s.passengers},
			{"flights", s.flights},
			{"airport terminals", s.airportTerminals},
			{"users", s.users},
			{"bookings", s.bookings},
		}
		for _, step := range steps {
			if err := step.fn(ctx); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
			logrus.WithField("step", step.name).Debug("seed step done")
		}
		return nil
	})
}

type seeder struct {
	tx bun.Tx
}

func (s seeder) insert(ctx context.Context, rows any) error {
	_, err := s.tx.NewInsert().Model(rows).Ignore().Exec(ctx)
	return err
}

func (s seeder) id(ctx context.Context, model any, column, value string) (int64, error) {
	var id int64
	err := s.tx.NewSelect().Model(model).Column("id").
		Where("? = ?", bun.Ident(column), value).
		Order("id").Limit(1).
		Scan(ctx, &id)
	if err != nil {
		return 0, fmt.Errorf("lookup %s=%s: %w", column, value, err)
	}
	return id, nil
}

func (s seeder) empty(ctx context.Context, model any) (bool, error) {
	n, err := s.tx.NewSelect().Model(model).Count(ctx)
	return n == 0, err
}

func (s seeder) reference(ctx context.Context) error {
	countries := []Country{
		{Code: "US", Name: "United States"},
		{Code: "UK", Name: "United Kingdom"},
		{Code: "UAE", Name: "United Arab Emirates"},
		{Code: "SA", Name: "Saudi Arabia"},
		{Code: "EG", Name: "Egypt"},
		{Code: "CA", Name: "Canada"},
		{Code: "FR", Name: "France"},
		{Code: "DE", Name: "Germany"},
		{Code: "IT", Name: "Italy"},
		{Code: "ES", Name: "Spain"},
		{Code: "JP", Name: "Japan"},
		{Code: "CN", Name: "China"},
		{Code: "IN", Name: "India"},
		{Code: "AU", Name: "Australia"},
		{Code: "BR", Name: "Brazil"},
		{Code: "MX", Name: "Mexico"},
		{Code: "TR", Name: "Turkey"},
		{Code: "KR", Name: "South Korea"},
		{Code: "SG", Name: "Singapore"},
		{Code: "MY", Name: "Malaysia"},
		{Code: "TH", Name: "Thailand"},
		{Code: "ZA", Name: "South Africa"},
		{Code: "NG", Name: "Nigeria"},
		{Code: "KE", Name: "Kenya"},
		{Code: "QA", Name: "Qatar"},
	}
	if err := s.insert(ctx, &countries); err != nil {
		return err
	}

	genders := []Gender{{Name: "Male"}, {Name: "Female"}}
	if err := s.insert(ctx, &genders); err != nil {
		return err
	}

	classes := []Class{
		{Name: "Economy", Description: "Standard economy class"},
		{Name: "Business", Description: "Business class with extra legroom"},
		{Name: "First", Description: "First class luxury"},
	}
	if err := s.insert(ctx, &classes); err != nil {
		return err
	}

	planeTypes := []PlaneType{
		{Name: "Boeing 737", Manufacturer: "Boeing", Model: "737-800"},
		{Name: "Airbus A320", Manufacturer: "Airbus", Model: "A320"},
		{Name: "Boeing 777", Manufacturer: "Boeing", Model: "777-300ER"},
		{Name: "Airbus A380", Manufacturer: "Airbus", Model: "A380-800"},
	}
	if err := s.insert(ctx, &planeTypes); err != nil {
		return err
	}

	branches := []Branch{
		{Code: "AK-HQ", Name: "Al Kawthar Headquarters", Address: "Dubai, UAE", PhoneNumber: "+971-4-1234567"},
		{Code: "AK-KSA", Name: "Al Kawthar KSA Branch", Address: "Riyadh, Saudi Arabia", PhoneNumber: "+966-11-7654321"},
		{Code: "AK-EGY", Name: "Al Kawthar Egypt Branch", Address: "Cairo, Egypt", PhoneNumber: "+20-2-9876543"},
	}
	if err := s.insert(ctx, &branches); err != nil {
		return err
	}

	// terminal numbers carry no unique key, conflict-ignore would duplicate them
	empty, err := s.empty(ctx, (*Terminal)(nil))
	if err != nil || !empty {
		return err
	}
	terminals := []Terminal{
		{Number: "1", Name: "Terminal 1"},
		{Number: "2", Name: "Terminal 2"},
		{Number: "3", Name: "Terminal 3"},
		{Number: "N", Name: "North Terminal"},
		{Number: "S", Name: "South Terminal"},
	}
	return s.insert(ctx, &terminals)
}

func (s seeder) airports(ctx context.Context) error {
	countryIDs := map[string]int64{}
	for _, code := range []string{"UAE", "SA", "EG", "QA"} {
		id, err := s.id(ctx, (*Country)(nil), "code", code)
		if err != nil {
			return err
		}
		countryIDs[code] = id
	}

	airports := []Airport{
		{AirportCode: "DXB", Name: "Dubai International Airport", CountryID: countryIDs["UAE"]},
		{AirportCode: "AUH", Name: "Abu Dhabi International Airport", CountryID: countryIDs["UAE"]},
		{AirportCode: "RUH", Name: "King Khalid International Airport", CountryID: countryIDs["SA"]},
		{AirportCode: "JED", Name: "King Abdulaziz International Airport", CountryID: countryIDs["SA"]},
		{AirportCode: "MED", Name: "Prince Mohammad Airport", CountryID: countryIDs["SA"]},
		{AirportCode: "CAI", Name: "Cairo International Airport", CountryID: countryIDs["EG"]},
		{AirportCode: "ALY", Name: "Alexandria International Airport", CountryID: countryIDs["EG"]},
		{AirportCode: "DOH", Name: "Hamad International Airport", CountryID: countryIDs["QA"]},
	}
	return s.insert(ctx, &airports)
}

func (s seeder) planes(ctx context.Context) error {
	typeIDs := map[string]int64{}
	for _, name := range []string{"Boeing 737", "Airbus A320", "Boeing 777"} {
		id, err := s.id(ctx, (*PlaneType)(nil), "name", name)
		if err != nil {
			return err
		}
		typeIDs[name] = id
	}

	planes := []Plane{
		{TailNumber: "AK-001", PlaneTypeID: typeIDs["Boeing 737"]},
		{TailNumber: "AK-002", PlaneTypeID: typeIDs["Boeing 737"]},
		{TailNumber: "AK-003", PlaneTypeID: typeIDs["Airbus A320"]},
		{TailNumber: "AK-004", PlaneTypeID: typeIDs["Airbus A320"]},
		{TailNumber: "AK-005", PlaneTypeID: typeIDs["Boeing 777"]},
		{TailNumber: "AK-006", PlaneTypeID: typeIDs["Boeing 777"]},
	}
	if err := s.insert(ctx, &planes); err != nil {
		return err
	}

	classIDs := map[string]int64{}
	for _, name := range []string{"Economy", "Business", "First"} {
		id, err := s.id(ctx, (*Class)(nil), "name", name)
		if err != nil {
			return err
		}
		classIDs[name] = id
	}

	// only the 777 offers First
	links := []PlaneAvailableClass{
		{PlaneTypeID: typeIDs["Boeing 737"], ClassID: classIDs["Economy"]},
		{PlaneTypeID: typeIDs["Boeing 737"], ClassID: classIDs["Business"]},
		{PlaneTypeID: typeIDs["Airbus A320"], ClassID: classIDs["Economy"]},
		{PlaneTypeID: typeIDs["Airbus A320"], ClassID: classIDs["Business"]},
		{PlaneTypeID: typeIDs["Boeing 777"], ClassID: classIDs["Economy"]},
		{PlaneTypeID: typeIDs["Boeing 777"], ClassID: classIDs["Business"]},
		{PlaneTypeID: typeIDs["Boeing 777"], ClassID: classIDs["First"]},
	}
	return s.insert(ctx, &links)
}

func (s seeder) employees(ctx context.Context) error {
	hq, err := s.id(ctx, (*Branch)(nil), "code", "AK-HQ")
	if err != nil {
		return err
	}
	employees := []Employee{
		{EmployeeNumber: "EMP-001", Name: "Ahmed Al-Mansoori", Address: "Dubai Marina, Dubai", PhoneNumber: "+971-50-1112233", Job: "Manager", BranchID: hq},
		{EmployeeNumber: "EMP-002", Name: "Fatima Al-Qasimi", Address: "Jumeirah, Dubai", PhoneNumber: "+971-50-4445566", Job: "Flight Supervisor", BranchID: hq},
		{EmployeeNumber: "EMP-003", Name: "Khalid Al-Otaibi", Address: "Al Olaya, Riyadh", PhoneNumber: "+966-50-7778889", Job: "Ground Staff", BranchID: hq},
		{EmployeeNumber: "EMP-004", Name: "Sarah Johnson", Address: "Downtown Dubai", PhoneNumber: "+971-50-9990001", Job: "Customer Service", BranchID: hq},
	}
	return s.insert(ctx, &employees)
}

func (s seeder) passengers(ctx context.Context) error {
	male, err := s.id(ctx, (*Gender)(nil), "name", "Male")
	if err != nil {
		return err
	}
	female, err := s.id(ctx, (*Gender)(nil), "name", "Female")
	if err != nil {
		return err
	}
	countryIDs := map[string]int64{}
	for _, code := range []string{"UAE", "SA", "EG", "QA"} {
		id, err := s.id(ctx, (*Country)(nil), "code", code)
		if err != nil {
			return err
		}
		countryIDs[code] = id
	}

	passengers := []Passenger{
		{PassportNumber: "P12345678", Name: "Mohammed Hassan", GenderID: male, NationalityCountryID: countryIDs["UAE"]},
		{PassportNumber: "P87654321", Name: "Aisha Rahman", GenderID: female, NationalityCountryID: countryIDs["SA"]},
		{PassportNumber: "P11223344", Name: "Omar Khalid", GenderID: male, NationalityCountryID: countryIDs["EG"]},
		{PassportNumber: "P44332211", Name: "Layla Ahmed", GenderID: female, NationalityCountryID: countryIDs["UAE"]},
		{PassportNumber: "P55667788", Name: "Yousef Ibrahim", GenderID: male, NationalityCountryID: countryIDs["QA"]},
	}
	return s.insert(ctx, &passengers)
}

func (s seeder) airportIDs(ctx context.Context, codes ...string) (map[string]int64, error) {
	ids := make(map[string]int64, len(codes))
	for _, code := range codes {
		id, err := s.id(ctx, (*Airport)(nil), "airport_code", code)
		if err != nil {
			return nil, err
		}
		ids[code] = id
	}
	return ids, nil
}

func (s seeder) flights(ctx context.Context) error {
	empty, err := s.empty(ctx, (*Flight)(nil))
	if err != nil || !empty {
		return err
	}

	ap, err := s.airportIDs(ctx, "DXB", "RUH", "JED", "CAI", "DOH")
	if err != nil {
		return err
	}
	plane1, err := s.id(ctx, (*Plane)(nil), "tail_number", "AK-001")
	if err != nil {
		return err
	}
	plane3, err := s.id(ctx, (*Plane)(nil), "tail_number", "AK-003")
	if err != nil {
		return err
	}
	hq, err := s.id(ctx, (*Branch)(nil), "code", "AK-HQ")
	if err != nil {
		return err
	}

	flight := func(number string, plane int64, from, to, depDate, depTime, arrDate, arrTime string) Flight {
		return Flight{
			FlightNumber:         number,
			PlaneID:              plane,
			BranchID:             hq,
			OriginAirportID:      ap[from],
			DestinationAirportID: ap[to],
			DepartureDate:        depDate,
			DepartureTime:        depTime,
			ArrivalDate:          arrDate,
			ArrivalTime:          arrTime,
			Status:               "scheduled",
		}
	}
	flights := []Flight{
		flight("AK101", plane1, "DXB", "RUH", "2024-02-01", "08:00", "2024-02-01", "10:30"),
		flight("AK102", plane1, "RUH", "DXB", "2024-02-01", "12:00", "2024-02-01", "14:30"),
		flight("AK201", plane3, "DXB", "JED", "2024-02-01", "14:00", "2024-02-01", "16:45"),
		flight("AK202", plane3, "JED", "DXB", "2024-02-01", "18:30", "2024-02-01", "21:15"),
		flight("AK301", plane1, "DXB", "CAI", "2024-02-02", "09:00", "2024-02-02", "11:30"),
		flight("AK302", plane1, "CAI", "DXB", "2024-02-02", "13:00", "2024-02-02", "15:30"),
		flight("AK401", plane3, "RUH", "DOH", "2024-02-02", "10:30", "2024-02-02", "11:45"),
		flight("AK402", plane3, "DOH", "RUH", "2024-02-02", "13:00", "2024-02-02", "14:15"),
	}
	_, err = s.tx.NewInsert().Model(&flights).Exec(ctx)
	return err
}

func (s seeder) airportTerminals(ctx context.Context) error {
	ap, err := s.airportIDs(ctx, "DXB", "RUH", "JED", "CAI", "DOH")
	if err != nil {
		return err
	}
	t1, err := s.id(ctx, (*Terminal)(nil), "number", "1")
	if err != nil {
		return err
	}
	t2, err := s.id(ctx, (*Terminal)(nil), "number", "2")
	if err != nil {
		return err
	}

	links := []AirportTerminal{
		{AirportID: ap["DXB"], TerminalID: t1},
		{AirportID: ap["DXB"], TerminalID: t2},
		{AirportID: ap["RUH"], TerminalID: t1},
		{AirportID: ap["JED"], TerminalID: t1},
		{AirportID: ap["CAI"], TerminalID: t1},
		{AirportID: ap["DOH"], TerminalID: t1},
	}
	return s.insert(ctx, &links)
}

func (s seeder) users(ctx context.Context) error {
	exists, err := s.tx.NewSelect().Model((*User)(nil)).Exists(ctx)
	if err != nil || exists {
		return err
	}
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return err
	}
	users := []User{
		{Username: "admin", Password: hash, Email: "admin@alkawthar.com", IsAdmin: true},
		{Username: "agent1", Password: hash, Email: "agent1@alkawthar.com", IsAdmin: false},
	}
	return s.insert(ctx, &users)
}

func (s seeder) bookings(ctx context.Context) error {
	empty, err := s.empty(ctx, (*Ticket)(nil))
	if err != nil || !empty {
		return err
	}

	admin, err := s.id(ctx, (*User)(nil), "username", "admin")
	if err != nil {
		return err
	}
	ak101, err := s.id(ctx, (*Flight)(nil), "flight_number", "AK101")
	if err != nil {
		return err
	}
	ak201, err := s.id(ctx, (*Flight)(nil), "flight_number", "AK201")
	if err != nil {
		return err
	}

	bookings := []Booking{
		{UserID: admin, FlightID: ak101, SeatCount: 2, BookingDate: "2024-01-10", TotalPrice: 900, BookingReference: "BRN001"},
		{UserID: admin, FlightID: ak101, SeatCount: 1, BookingDate: "2024-01-11", TotalPrice: 450, BookingReference: "BRN002"},
	}
	if err := s.insert(ctx, &bookings); err != nil {
		return err
	}

	brn1, err := s.id(ctx, (*Booking)(nil), "booking_reference", "BRN001")
	if err != nil {
		return err
	}
	brn2, err := s.id(ctx, (*Booking)(nil), "booking_reference", "BRN002")
	if err != nil {
		return err
	}
	p1, err := s.id(ctx, (*Passenger)(nil), "passport_number", "P12345678")
	if err != nil {
		return err
	}
	p2, err := s.id(ctx, (*Passenger)(nil), "passport_number", "P87654321")
	if err != nil {
		return err
	}
	economy, err := s.id(ctx, (*Class)(nil), "name", "Economy")
	if err != nil {
		return err
	}
	business, err := s.id(ctx, (*Class)(nil), "name", "Business")
	if err != nil {
		return err
	}
	t1, err := s.id(ctx, (*Terminal)(nil), "number", "1")
	if err != nil {
		return err
	}

	// BRN002 records AK101 but its ticket flies AK201, as in the legacy data
	tickets := []Ticket{
		{TicketNumber: "TKT-001", PassengerID: p1, FlightID: ak101, BookingID: brn1, ClassID: economy, TerminalID: t1, SeatNumber: "15A", Price: 450, Status: "confirmed"},
		{TicketNumber: "TKT-002", PassengerID: p1, FlightID: ak101, BookingID: brn1, ClassID: economy, TerminalID: t1, SeatNumber: "15B", Price: 450, Status: "confirmed"},
		{TicketNumber: "TKT-003", PassengerID: p2, FlightID: ak201, BookingID: brn2, ClassID: business, TerminalID: t1, SeatNumber: "5B", Price: 850, Status: "confirmed"},
	}
	_, err = s.tx.NewInsert().Model(&tickets).Exec(ctx)
	return err
}
