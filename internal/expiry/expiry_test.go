// internal/expiry/expiry_test.go
package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lima(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(BusinessTimezone)
	require.NoError(t, err)
	return loc
}

func TestVenceHoy(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		fin  time.Time
		want bool
	}{
		{"same date same time", time.Date(2024, 3, 15, 12, 0, 0, 0, loc), true},
		{"same date end of day", time.Date(2024, 3, 15, 23, 59, 0, 0, loc), true},
		{"same date start of day", time.Date(2024, 3, 15, 0, 1, 0, 0, loc), true},
		{"next day", time.Date(2024, 3, 16, 0, 1, 0, 0, loc), false},
		{"previous day", time.Date(2024, 3, 14, 23, 59, 0, 0, loc), false},
		// 02:00 UTC is 21:00 of the previous day in Lima
		{"utc instant crossing midnight", time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VenceHoy(tt.fin, now))
		})
	}
}

func TestVenceManana(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	assert.True(t, VenceManana(time.Date(2024, 3, 16, 8, 0, 0, 0, loc), now))
	assert.False(t, VenceManana(time.Date(2024, 3, 15, 8, 0, 0, 0, loc), now))
	assert.False(t, VenceManana(time.Date(2024, 3, 17, 8, 0, 0, 0, loc), now))
}

func TestVenceHoyAndMananaAreMutuallyExclusive(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	for day := 10; day <= 20; day++ {
		fin := time.Date(2024, 3, day, 18, 30, 0, 0, loc)
		hoy := VenceHoy(fin, now)
		manana := VenceManana(fin, now)
		assert.False(t, hoy && manana, "fin=%v classified as both today and tomorrow", fin)
	}
}

func TestDiasRestantes(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	assert.Equal(t, 0, DiasRestantes(time.Date(2024, 3, 15, 23, 0, 0, 0, loc), now))
	assert.Equal(t, 1, DiasRestantes(time.Date(2024, 3, 16, 1, 0, 0, 0, loc), now))
	assert.Equal(t, 7, DiasRestantes(time.Date(2024, 3, 22, 1, 0, 0, 0, loc), now))
	assert.Equal(t, -3, DiasRestantes(time.Date(2024, 3, 12, 1, 0, 0, 0, loc), now))
}

func TestDiasRestantesDecreasesByOnePerDay(t *testing.T) {
	loc := lima(t)
	fin := time.Date(2024, 4, 10, 9, 0, 0, 0, loc)

	previous := DiasRestantes(fin, time.Date(2024, 3, 1, 15, 0, 0, 0, loc))
	for day := 2; day <= 31; day++ {
		now := time.Date(2024, 3, day, 15, 0, 0, 0, loc)
		current := DiasRestantes(fin, now)
		assert.Equal(t, previous-1, current, "day %d", day)
		previous = current
	}
}

func TestClassifierIsIdempotent(t *testing.T) {
	loc := lima(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	fin := time.Date(2024, 3, 16, 8, 0, 0, 0, loc)

	for i := 0; i < 3; i++ {
		assert.False(t, VenceHoy(fin, now))
		assert.True(t, VenceManana(fin, now))
		assert.Equal(t, 1, DiasRestantes(fin, now))
	}
}
