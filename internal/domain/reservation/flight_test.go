package reservation

import (
	"testing"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlight_Valid(t *testing.T) {
	f, err := NewFlight("V001", "buenos aires", "madrid", "2024-03-15", 150)
	require.NoError(t, err)

	assert.Equal(t, "V001", f.Number())
	assert.Equal(t, "Buenos Aires", f.Origin())
	assert.Equal(t, "Madrid", f.Destination())
	assert.Equal(t, "2024-03-15", f.Date().Format(DateLayout))
	assert.Equal(t, 150, f.Capacity())
	assert.Equal(t, 150, f.AvailableCapacity())
	assert.Empty(t, f.Bookings())
}

func TestNewFlight_UppercasesNumber(t *testing.T) {
	f, err := NewFlight(" aa1234 ", "Lima", "Bogota", "2024-06-01", 200)
	require.NoError(t, err)

	assert.Equal(t, "AA1234", f.Number())
}

func TestNewFlight_Validation(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		origin      string
		destination string
		date        string
		capacity    int
		wantMsg     string
	}{
		{"number too short", "V", "Lima", "Quito", "2024-03-15", 100, "flight number must be at least 2 alphanumeric characters"},
		{"number with symbol", "V-01", "Lima", "Quito", "2024-03-15", 100, "flight number must be at least 2 alphanumeric characters"},
		{"empty number", "", "Lima", "Quito", "2024-03-15", 100, "flight number must be at least 2 alphanumeric characters"},
		{"origin too short", "V001", "L", "Quito", "2024-03-15", 100, "origin city must be at least 2 characters"},
		{"destination too short", "V001", "Lima", "Q", "2024-03-15", 100, "destination city must be at least 2 characters"},
		{"malformed date", "V001", "Lima", "Quito", "15-03-2024", 100, "date must be a valid calendar date in YYYY-MM-DD format"},
		{"impossible date", "V001", "Lima", "Quito", "2024-02-30", 100, "date must be a valid calendar date in YYYY-MM-DD format"},
		{"not a date", "V001", "Lima", "Quito", "soon", 100, "date must be a valid calendar date in YYYY-MM-DD format"},
		{"capacity zero", "V001", "Lima", "Quito", "2024-03-15", 0, "capacity must be an integer between 1 and 1000"},
		{"capacity negative", "V001", "Lima", "Quito", "2024-03-15", -5, "capacity must be an integer between 1 and 1000"},
		{"capacity too large", "V001", "Lima", "Quito", "2024-03-15", 1001, "capacity must be an integer between 1 and 1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFlight(tt.number, tt.origin, tt.destination, tt.date, tt.capacity)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeValidation, domainErr.Code)
		})
	}
}

func TestNewFlight_CapacityBounds(t *testing.T) {
	f, err := NewFlight("V001", "Lima", "Quito", "2024-03-15", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Capacity())

	f, err = NewFlight("V002", "Lima", "Quito", "2024-03-15", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, f.Capacity())
}

// Leap-day handling: 2024-02-29 exists, 2023-02-29 does not.
func TestNewFlight_LeapDay(t *testing.T) {
	_, err := NewFlight("V001", "Lima", "Quito", "2024-02-29", 100)
	require.NoError(t, err)

	_, err = NewFlight("V002", "Lima", "Quito", "2023-02-29", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date must be a valid calendar date")
}
