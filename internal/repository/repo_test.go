package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// setupTestDB returns a private in-memory database with the demo data loaded.
func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.CreateSchema(ctx, db))
	require.NoError(t, storage.Seed(ctx, db))
	return db
}

func lookupID(t *testing.T, db *bun.DB, table, column, value string) int64 {
	t.Helper()
	var id int64
	err := db.NewSelect().
		TableExpr("?", bun.Ident(table)).
		Column("id").
		Where("? = ?", bun.Ident(column), value).
		Limit(1).
		Scan(context.Background(), &id)
	require.NoError(t, err)
	return id
}
