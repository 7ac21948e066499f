package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/uptrace/bun"
)

type ReferenceRepository interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	Genders(ctx context.Context) ([]domain.Gender, error)
	Classes(ctx context.Context) ([]domain.Class, error)
	Terminals(ctx context.Context) ([]domain.Terminal, error)
	Airports(ctx context.Context) ([]domain.Airport, error)
	ClassByID(ctx context.Context, id int64) (*domain.Class, error)
}

type BunReferenceRepository struct {
	db *bun.DB
}

func NewReferenceRepository(db *bun.DB) ReferenceRepository {
	return &BunReferenceRepository{db: db}
}

func (r *BunReferenceRepository) Countries(ctx context.Context) ([]domain.Country, error) {
	items := make([]domain.Country, 0)
	err := r.db.NewSelect().TableExpr("countries").
		Column("id", "code", "name").
		OrderExpr("name").
		Scan(ctx, &items)
	return items, err
}

func (r *BunReferenceRepository) Genders(ctx context.Context) ([]domain.Gender, error) {
	items := make([]domain.Gender, 0)
	err := r.db.NewSelect().TableExpr("genders").
		Column("id", "name").
		OrderExpr("name").
		Scan(ctx, &items)
	return items, err
}

func (r *BunReferenceRepository) Classes(ctx context.Context) ([]domain.Class, error) {
	items := make([]domain.Class, 0)
	err := r.db.NewSelect().TableExpr("classes").
		ColumnExpr("id, name, COALESCE(description, '') AS description").
		OrderExpr("id").
		Scan(ctx, &items)
	return items, err
}

func (r *BunReferenceRepository) Terminals(ctx context.Context) ([]domain.Terminal, error) {
	items := make([]domain.Terminal, 0)
	err := r.db.NewSelect().TableExpr("terminals").
		ColumnExpr("id, number, COALESCE(name, '') AS name").
		OrderExpr("number, id").
		Scan(ctx, &items)
	return items, err
}

func (r *BunReferenceRepository) Airports(ctx context.Context) ([]domain.Airport, error) {
	items := make([]domain.Airport, 0)
	err := r.db.NewSelect().TableExpr("airports").
		Column("id", "airport_code", "name", "country_id").
		OrderExpr("airport_code").
		Scan(ctx, &items)
	return items, err
}

func (r *BunReferenceRepository) ClassByID(ctx context.Context, id int64) (*domain.Class, error) {
	var c domain.Class
	err := r.db.NewSelect().TableExpr("classes").
		ColumnExpr("id, name, COALESCE(description, '') AS description").
		Where("id = ?", id).
		Limit(1).
		Scan(ctx, &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var _ ReferenceRepository = (*BunReferenceRepository)(nil)
