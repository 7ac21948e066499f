package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/uptrace/bun"
)

type FlightRepository interface {
	List(ctx context.Context, sort domain.FlightSort) ([]domain.Flight, error)
	Search(ctx context.Context, term string) ([]domain.Flight, error)
	ListScheduled(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Exists(ctx context.Context, number, departureDate string) (bool, error)
	AirportExists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, flight domain.NewFlight) (*domain.Flight, error)
}

type BunFlightRepository struct {
	db *bun.DB
}

func NewFlightRepository(db *bun.DB) FlightRepository {
	return &BunFlightRepository{db: db}
}

// sortColumns whitelists ORDER BY expressions per sort key.
var sortColumns = map[domain.FlightSortField][]string{
	domain.FlightSortID:          {"f.id"},
	domain.FlightSortNumber:      {"f.flight_number"},
	domain.FlightSortOrigin:      {"origin_name"},
	domain.FlightSortDestination: {"destination_name"},
	domain.FlightSortDeparture:   {"f.departure_date", "f.departure_time"},
	domain.FlightSortArrival:     {"f.arrival_date", "f.arrival_time"},
	domain.FlightSortStatus:      {"f.status"},
}

func flightsQuery(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		TableExpr("flights AS f").
		ColumnExpr("f.id, f.flight_number, f.plane_id, f.branch_id").
		ColumnExpr("f.origin_airport_id, f.destination_airport_id").
		ColumnExpr("COALESCE(o.airport_code, '') AS origin_code, COALESCE(o.name, '') AS origin_name").
		ColumnExpr("COALESCE(d.airport_code, '') AS destination_code, COALESCE(d.name, '') AS destination_name").
		ColumnExpr("f.departure_date, f.departure_time, f.arrival_date, f.arrival_time, f.status").
		Join("LEFT JOIN airports AS o ON o.id = f.origin_airport_id").
		Join("LEFT JOIN airports AS d ON d.id = f.destination_airport_id")
}

func (r *BunFlightRepository) List(ctx context.Context, sort domain.FlightSort) ([]domain.Flight, error) {
	columns, ok := sortColumns[sort.Field]
	if !ok {
		columns = sortColumns[domain.FlightSortDeparture]
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	q := flightsQuery(r.db)
	for _, col := range columns {
		q = q.OrderExpr(col + " " + dir)
	}
	q = q.OrderExpr("f.id ASC")

	flights := make([]domain.Flight, 0)
	if err := q.Scan(ctx, &flights); err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return flights, nil
}

func (r *BunFlightRepository) Search(ctx context.Context, term string) ([]domain.Flight, error) {
	pattern := likePattern(term)

	flights := make([]domain.Flight, 0)
	err := flightsQuery(r.db).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("LOWER(f.flight_number) LIKE ?", pattern).
				WhereOr("LOWER(o.name) LIKE ?", pattern).
				WhereOr("LOWER(d.name) LIKE ?", pattern).
				WhereOr("LOWER(f.status) LIKE ?", pattern)
		}).
		OrderExpr("f.departure_date, f.departure_time, f.id").
		Scan(ctx, &flights)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	return flights, nil
}

func (r *BunFlightRepository) ListScheduled(ctx context.Context) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	err := flightsQuery(r.db).
		Where("f.status = ?", domain.FlightStatusScheduled).
		OrderExpr("f.departure_date, f.departure_time, f.id").
		Scan(ctx, &flights)
	if err != nil {
		return nil, fmt.Errorf("list scheduled flights: %w", err)
	}
	return flights, nil
}

func (r *BunFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return getFlight(ctx, r.db, id)
}

func getFlight(ctx context.Context, db bun.IDB, id int64) (*domain.Flight, error) {
	var f domain.Flight
	err := flightsQuery(db).Where("f.id = ?", id).Limit(1).Scan(ctx, &f)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Create re-checks the airports and the (number, departure date) pair inside
// the insert transaction.
func (r *BunFlightRepository) Create(ctx context.Context, nf domain.NewFlight) (*domain.Flight, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	dup, err := flightExists(ctx, tx, nf.FlightNumber, nf.DepartureDate)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, domain.ErrFlightExists(nf.FlightNumber, nf.DepartureDate)
	}

	ok, err := exists(ctx, tx, (*storage.Airport)(nil), nf.OriginAirportID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidOrigin
	}
	ok, err = exists(ctx, tx, (*storage.Airport)(nil), nf.DestinationAirportID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidDest
	}

	planeID := nf.PlaneID
	if planeID == 0 {
		if planeID, err = firstID(ctx, tx, (*storage.Plane)(nil)); err != nil {
			return nil, fmt.Errorf("pick plane: %w", err)
		}
	}
	branchID := nf.BranchID
	if branchID == 0 {
		if branchID, err = firstID(ctx, tx, (*storage.Branch)(nil)); err != nil {
			return nil, fmt.Errorf("pick branch: %w", err)
		}
	}

	row := storage.Flight{
		FlightNumber:         nf.FlightNumber,
		PlaneID:              planeID,
		BranchID:             branchID,
		OriginAirportID:      nf.OriginAirportID,
		DestinationAirportID: nf.DestinationAirportID,
		DepartureDate:        nf.DepartureDate,
		DepartureTime:        nf.DepartureTime,
		ArrivalDate:          nf.ArrivalDate,
		ArrivalTime:          nf.ArrivalTime,
		Status:               domain.FlightStatusScheduled,
	}
	if _, err := tx.NewInsert().Model(&row).Returning("id").Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert flight: %w", err)
	}

	created, err := getFlight(ctx, tx, row.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// Exists reports whether number already departs on departureDate.
func (r *BunFlightRepository) Exists(ctx context.Context, number, departureDate string) (bool, error) {
	return flightExists(ctx, r.db, number, departureDate)
}

func (r *BunFlightRepository) AirportExists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, (*storage.Airport)(nil), id)
}

func flightExists(ctx context.Context, db bun.IDB, number, departureDate string) (bool, error) {
	return db.NewSelect().Model((*storage.Flight)(nil)).
		Where("flight_number = ?", number).
		Where("departure_date = ?", departureDate).
		Exists(ctx)
}

func exists(ctx context.Context, db bun.IDB, model any, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	return db.NewSelect().Model(model).Where("id = ?", id).Exists(ctx)
}

func firstID(ctx context.Context, db bun.IDB, model any) (int64, error) {
	var id int64
	err := db.NewSelect().Model(model).Column("id").Order("id").Limit(1).Scan(ctx, &id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return id, err
}

func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

var _ FlightRepository = (*BunFlightRepository)(nil)
