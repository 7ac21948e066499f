package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/uptrace/bun"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Search(ctx context.Context, term string) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Tickets(ctx context.Context, passengerID int64) ([]domain.PassengerTicket, error)
	Create(ctx context.Context, in domain.PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, in domain.PassengerInput) (*domain.Passenger, error)
}

type BunPassengerRepository struct {
	db *bun.DB
}

func NewPassengerRepository(db *bun.DB) PassengerRepository {
	return &BunPassengerRepository{db: db}
}

func passengersQuery(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		TableExpr("passengers AS p").
		ColumnExpr("p.id, p.passport_number, p.name").
		ColumnExpr("p.gender_id, g.name AS gender").
		ColumnExpr("p.nationality_country_id, c.name AS nationality, c.code AS country_code").
		Join("JOIN genders AS g ON g.id = p.gender_id").
		Join("JOIN countries AS c ON c.id = p.nationality_country_id")
}

func (r *BunPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	passengers := make([]domain.Passenger, 0)
	if err := passengersQuery(r.db).OrderExpr("p.name, p.id").Scan(ctx, &passengers); err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	return passengers, nil
}

func (r *BunPassengerRepository) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	pattern := likePattern(term)

	passengers := make([]domain.Passenger, 0)
	err := passengersQuery(r.db).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("LOWER(p.passport_number) LIKE ?", pattern).
				WhereOr("LOWER(p.name) LIKE ?", pattern).
				WhereOr("LOWER(g.name) LIKE ?", pattern).
				WhereOr("LOWER(c.name) LIKE ?", pattern)
		}).
		OrderExpr("p.name, p.id").
		Scan(ctx, &passengers)
	if err != nil {
		return nil, fmt.Errorf("search passengers: %w", err)
	}
	return passengers, nil
}

func (r *BunPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return getPassenger(ctx, r.db, id)
}

func getPassenger(ctx context.Context, db bun.IDB, id int64) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := passengersQuery(db).Where("p.id = ?", id).Limit(1).Scan(ctx, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPassengerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *BunPassengerRepository) Tickets(ctx context.Context, passengerID int64) ([]domain.PassengerTicket, error) {
	rows := make([]domain.PassengerTicket, 0)
	err := r.db.NewRaw(`
SELECT b.booking_reference, f.flight_number,
       o.airport_code || ' → ' || d.airport_code AS route,
       b.booking_date, t.ticket_number, c.name AS class_name,
       t.seat_number, t.price, t.status
FROM tickets t
JOIN bookings b ON b.id = t.booking_id
JOIN flights f ON f.id = t.flight_id
JOIN airports o ON o.id = f.origin_airport_id
JOIN airports d ON d.id = f.destination_airport_id
JOIN classes c ON c.id = t.class_id
WHERE t.passenger_id = ?
ORDER BY b.booking_date DESC, t.id DESC`, passengerID).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("passenger tickets: %w", err)
	}
	return rows, nil
}

func (r *BunPassengerRepository) Create(ctx context.Context, in domain.PassengerInput) (*domain.Passenger, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := checkGenderAndCountry(ctx, tx, in); err != nil {
		return nil, err
	}

	row := storage.Passenger{
		PassportNumber:       in.PassportNumber,
		Name:                 in.Name,
		GenderID:             in.GenderID,
		NationalityCountryID: in.NationalityCountryID,
	}
	if _, err := tx.NewInsert().Model(&row).Returning("id").Exec(ctx); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, domain.ErrPassportExists
		}
		return nil, fmt.Errorf("insert passenger: %w", err)
	}

	p, err := getPassenger(ctx, tx, row.ID)
	if err != nil {
		return nil, err
	}
	return p, tx.Commit()
}

// Update changes name, gender and nationality. The passport number is the
// passenger's identity and is not editable.
func (r *BunPassengerRepository) Update(ctx context.Context, id int64, in domain.PassengerInput) (*domain.Passenger, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := checkGenderAndCountry(ctx, tx, in); err != nil {
		return nil, err
	}

	res, err := tx.NewUpdate().Model((*storage.Passenger)(nil)).
		Set("name = ?", in.Name).
		Set("gender_id = ?", in.GenderID).
		Set("nationality_country_id = ?", in.NationalityCountryID).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update passenger: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrPassengerNotFound
	}

	p, err := getPassenger(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	return p, tx.Commit()
}

func checkGenderAndCountry(ctx context.Context, db bun.IDB, in domain.PassengerInput) error {
	ok, err := exists(ctx, db, (*storage.Gender)(nil), in.GenderID)
	if err != nil {
		return err
	}
	if ok {
		ok, err = exists(ctx, db, (*storage.Country)(nil), in.NationalityCountryID)
		if err != nil {
			return err
		}
	}
	if !ok {
		return domain.ErrInvalidGenderNat
	}
	return nil
}

var _ PassengerRepository = (*BunPassengerRepository)(nil)
