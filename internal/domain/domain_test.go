package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := ErrFlightExists("AK101", "2024-02-01")

	assert.Equal(t, "Flight AK101 already exists on 2024-02-01!", err.Error())
	assert.Equal(t, CodeFlightExists, err.Code)
	assert.Equal(t, []any{"AK101", "2024-02-01"}, err.Args)

	wrapped := fmt.Errorf("create flight: %w", err)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(ErrFlightNotFound))
	assert.True(t, errors.Is(wrapped, err))
}

func TestOptionKindValid(t *testing.T) {
	assert.True(t, OptionAirports.Valid())
	assert.True(t, OptionFlights.Valid())
	assert.False(t, OptionKind("planes").Valid())
}

func TestFlightDepartureArrival(t *testing.T) {
	f := Flight{DepartureDate: "2024-02-01", DepartureTime: "08:00", ArrivalDate: "2024-02-01", ArrivalTime: "10:30"}

	assert.Equal(t, "2024-02-01 08:00", f.Departure())
	assert.Equal(t, "2024-02-01 10:30", f.Arrival())
}
