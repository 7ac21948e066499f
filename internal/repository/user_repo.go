package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FirstID(ctx context.Context) (int64, error)
}

type BunUserRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &BunUserRepository{db: db}
}

func (r *BunUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, "username = ?", username)
}

func (r *BunUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getUser(ctx, "id = ?", id)
}

func (r *BunUserRepository) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	var row storage.User
	err := r.db.NewSelect().Model(&row).Where(where, arg).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
		Email:    row.Email,
		IsAdmin:  row.IsAdmin,
	}, nil
}

// FirstID is the fallback owner of bookings made without a session user.
func (r *BunUserRepository) FirstID(ctx context.Context) (int64, error) {
	return firstID(ctx, r.db, (*storage.User)(nil))
}

var _ UserRepository = (*BunUserRepository)(nil)
