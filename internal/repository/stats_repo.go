package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/uptrace/bun"
)

type StatsRepository interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type BunStatsRepository struct {
	db *bun.DB
}

func NewStatsRepository(db *bun.DB) StatsRepository {
	return &BunStatsRepository{db: db}
}

// Dashboard counts a booking as active while at least one of its tickets is
// confirmed.
func (r *BunStatsRepository) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	var err error

	if stats.TotalFlights, err = r.db.NewSelect().Model((*storage.Flight)(nil)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}
	if stats.Passengers, err = r.db.NewSelect().Model((*storage.Passenger)(nil)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count passengers: %w", err)
	}

	active := r.db.NewSelect().Model((*storage.Ticket)(nil)).
		Column("booking_id").
		Where("status = ?", domain.TicketStatusConfirmed)

	if stats.ActiveBookings, err = r.db.NewSelect().Model((*storage.Booking)(nil)).
		Where("id IN (?)", active).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	err = r.db.NewSelect().Model((*storage.Booking)(nil)).
		ColumnExpr("COALESCE(SUM(total_price), 0)").
		Where("id IN (?)", active).
		Scan(ctx, &stats.Revenue)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	return &stats, nil
}

var _ StatsRepository = (*BunStatsRepository)(nil)
