package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReferenceRepository(db)
	ctx := context.Background()

	countries, err := repo.Countries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 25)
	assert.Equal(t, "Australia", countries[0].Name)

	genders, err := repo.Genders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Gender{{ID: genders[0].ID, Name: "Female"}, {ID: genders[1].ID, Name: "Male"}}, genders)

	classes, err := repo.Classes(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 3)
	assert.Equal(t, "Economy", classes[0].Name)

	terminals, err := repo.Terminals(ctx)
	require.NoError(t, err)
	require.Len(t, terminals, 5)
	assert.Equal(t, "1", terminals[0].Number)
	assert.Equal(t, "Terminal 1", terminals[0].Name)

	airports, err := repo.Airports(ctx)
	require.NoError(t, err)
	require.Len(t, airports, 8)
	assert.Equal(t, "ALY", airports[0].AirportCode)

	class, err := repo.ClassByID(ctx, classes[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Business", class.Name)

	_, err = repo.ClassByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.NotEqual(t, "password123", u.Password)

	agent, err := repo.GetByUsername(ctx, "agent1")
	require.NoError(t, err)
	assert.False(t, agent.IsAdmin)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first, err := repo.FirstID(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, first)

	byID, err := repo.GetByID(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "agent1@alkawthar.com", byID.Email)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	stats, err := repo.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalFlights)
	assert.Equal(t, 5, stats.Passengers)
	assert.Equal(t, 2, stats.ActiveBookings)
	assert.Equal(t, 1350.0, stats.Revenue)

	_, err = db.NewUpdate().Model((*storage.Ticket)(nil)).
		Set("status = ?", domain.TicketStatusCancelled).
		Where("ticket_number = ?", "TKT-003").
		Exec(ctx)
	require.NoError(t, err)

	stats, err = repo.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveBookings)
	assert.Equal(t, 900.0, stats.Revenue)
}
