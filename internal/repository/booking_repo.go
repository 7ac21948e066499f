package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking, ticket *domain.Ticket) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	CancelTickets(ctx context.Context, bookingID int64) (int64, error)
	List(ctx context.Context) ([]domain.BookingSummary, error)
	Search(ctx context.Context, term string) ([]domain.BookingSummary, error)
	TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error)
}

type BunBookingRepository struct {
	db *bun.DB
}

func NewBookingRepository(db *bun.DB) BookingRepository {
	return &BunBookingRepository{db: db}
}

// Create stores the booking and its ticket atomically. booking_date is
// assigned by the database; booking.ID, booking.BookingDate and ticket.ID are
// filled in on success.
func (r *BunBookingRepository) Create(ctx context.Context, booking *domain.Booking, ticket *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	checks := []struct {
		model any
		id    int64
		err   error
	}{
		{(*storage.Passenger)(nil), ticket.PassengerID, domain.ErrSelectPassenger},
		{(*storage.Flight)(nil), booking.FlightID, domain.ErrSelectFlight},
		{(*storage.Class)(nil), ticket.ClassID, domain.ErrSelectClass},
		{(*storage.Terminal)(nil), ticket.TerminalID, domain.ErrSelectTerminal},
	}
	for _, c := range checks {
		ok, err := exists(ctx, tx, c.model, c.id)
		if err != nil {
			return err
		}
		if !ok {
			return c.err
		}
	}

	bookingRow := storage.Booking{
		UserID:           booking.UserID,
		FlightID:         booking.FlightID,
		SeatCount:        booking.SeatCount,
		TotalPrice:       booking.TotalPrice,
		BookingReference: booking.BookingReference,
	}
	if _, err = insertBooking(tx, &bookingRow).Exec(ctx); err != nil {
		return wrapWriteErr("insert booking", err)
	}

	ticketRow := storage.Ticket{
		TicketNumber: ticket.TicketNumber,
		PassengerID:  ticket.PassengerID,
		FlightID:     booking.FlightID,
		BookingID:    bookingRow.ID,
		ClassID:      ticket.ClassID,
		TerminalID:   ticket.TerminalID,
		SeatNumber:   ticket.SeatNumber,
		Price:        ticket.Price,
		Status:       string(domain.TicketStatusConfirmed),
	}
	if _, err := tx.NewInsert().Model(&ticketRow).Returning("id").Exec(ctx); err != nil {
		return wrapWriteErr("insert ticket", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	booking.ID = bookingRow.ID
	booking.BookingDate = bookingRow.BookingDate
	ticket.ID = ticketRow.ID
	ticket.BookingID = bookingRow.ID
	ticket.FlightID = booking.FlightID
	ticket.Status = domain.TicketStatusConfirmed
	booking.Tickets = []domain.Ticket{*ticket}
	return nil
}

// insertBooking stamps booking_date with the server date. Postgres returns
// CURRENT_DATE as a date, so it is cast to keep the YYYY-MM-DD text that
// SQLite produces.
func insertBooking(db bun.IDB, row *storage.Booking) *bun.InsertQuery {
	today := "CURRENT_DATE"
	if db.Dialect().Name() == dialect.PG {
		today = "CURRENT_DATE::text"
	}
	return db.NewInsert().Model(row).
		Value("booking_date", today).
		Returning("id, booking_date")
}

func (r *BunBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var row storage.Booking
	err := r.db.NewSelect().Model(&row).Where("booking_reference = ?", reference).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	var tickets []storage.Ticket
	if err := r.db.NewSelect().Model(&tickets).Where("booking_id = ?", row.ID).Order("id").Scan(ctx); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:               row.ID,
		UserID:           row.UserID,
		FlightID:         row.FlightID,
		SeatCount:        row.SeatCount,
		BookingDate:      row.BookingDate,
		TotalPrice:       row.TotalPrice,
		BookingReference: row.BookingReference,
		Tickets:          make([]domain.Ticket, 0, len(tickets)),
	}
	for _, t := range tickets {
		b.Tickets = append(b.Tickets, domain.Ticket{
			ID:           t.ID,
			TicketNumber: t.TicketNumber,
			PassengerID:  t.PassengerID,
			FlightID:     t.FlightID,
			BookingID:    t.BookingID,
			ClassID:      t.ClassID,
			TerminalID:   t.TerminalID,
			SeatNumber:   t.SeatNumber,
			Price:        t.Price,
			Status:       domain.TicketStatus(t.Status),
		})
	}
	return b, nil
}

// CancelTickets marks every still-confirmed ticket of the booking as
// cancelled and returns how many changed.
func (r *BunBookingRepository) CancelTickets(ctx context.Context, bookingID int64) (int64, error) {
	res, err := r.db.NewUpdate().Model((*storage.Ticket)(nil)).
		Set("status = ?", domain.TicketStatusCancelled).
		Where("booking_id = ?", bookingID).
		Where("status <> ?", domain.TicketStatusCancelled).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const bookingSummarySQL = `
SELECT b.id, b.booking_reference,
       MIN(p.name) AS passenger_name,
       MIN(f.flight_number) AS flight_number,
       MIN(o.airport_code || ' → ' || d.airport_code) AS route,
       b.booking_date, b.seat_count, b.total_price,
       MIN(t.status) AS status
FROM bookings b
JOIN tickets t ON t.booking_id = b.id
JOIN passengers p ON p.id = t.passenger_id
JOIN flights f ON f.id = t.flight_id
JOIN airports o ON o.id = f.origin_airport_id
JOIN airports d ON d.id = f.destination_airport_id
%s
GROUP BY b.id, b.booking_reference, b.booking_date, b.seat_count, b.total_price
ORDER BY b.booking_date DESC, b.id DESC`

func (r *BunBookingRepository) List(ctx context.Context) ([]domain.BookingSummary, error) {
	rows := make([]domain.BookingSummary, 0)
	if err := r.db.NewRaw(fmt.Sprintf(bookingSummarySQL, "")).Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return rows, nil
}

func (r *BunBookingRepository) Search(ctx context.Context, term string) ([]domain.BookingSummary, error) {
	const where = `WHERE LOWER(b.booking_reference) LIKE ?
   OR LOWER(p.name) LIKE ?
   OR LOWER(f.flight_number) LIKE ?
   OR LOWER(t.status) LIKE ?`
	pattern := likePattern(term)

	rows := make([]domain.BookingSummary, 0)
	err := r.db.NewRaw(fmt.Sprintf(bookingSummarySQL, where), pattern, pattern, pattern, pattern).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("search bookings: %w", err)
	}
	return rows, nil
}

func (r *BunBookingRepository) TicketDetails(ctx context.Context, ticketNumber string) (*domain.TicketDetails, error) {
	var d domain.TicketDetails
	err := r.db.NewRaw(`
SELECT t.ticket_number, b.booking_reference,
       p.name AS passenger_name, p.passport_number,
       f.flight_number, o.airport_code || ' → ' || d.airport_code AS route,
       f.departure_date, f.departure_time,
       c.name AS class_name, tr.number AS terminal_number,
       t.seat_number, t.price, t.status
FROM tickets t
JOIN bookings b ON b.id = t.booking_id
JOIN passengers p ON p.id = t.passenger_id
JOIN flights f ON f.id = t.flight_id
JOIN airports o ON o.id = f.origin_airport_id
JOIN airports d ON d.id = f.destination_airport_id
JOIN classes c ON c.id = t.class_id
JOIN terminals tr ON tr.id = t.terminal_id
WHERE t.ticket_number = ?`, ticketNumber).Scan(ctx, &d)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return &d, nil
}

func wrapWriteErr(op string, err error) error {
	if storage.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ BookingRepository = (*BunBookingRepository)(nil)
