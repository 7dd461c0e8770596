package services

import (
	"testing"
	"time"

	"recruittrack/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilShip(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		shipDate time.Time
		want     int
	}{
		{"same day", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), 0},
		{"tomorrow morning", time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), 1},
		{"tomorrow late", time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC), 1},
		{"next week", time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), 7},
		{"yesterday", time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysUntilShip(now, tc.shipDate))
		})
	}
}

// The count compares midnights, so the time of day on either side must
// not change the answer.
func TestDaysUntilShip_TimeOfDayIrrelevant(t *testing.T) {
	shipDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	early := time.Date(2025, 5, 29, 0, 1, 0, 0, time.UTC)
	late := time.Date(2025, 5, 29, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, DaysUntilShip(early, shipDate), DaysUntilShip(late, shipDate))
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, dto.UrgencyHigh, UrgencyFor(0))
	assert.Equal(t, dto.UrgencyHigh, UrgencyFor(3))
	assert.Equal(t, dto.UrgencyMedium, UrgencyFor(4))
	assert.Equal(t, dto.UrgencyMedium, UrgencyFor(7))
	assert.Equal(t, dto.UrgencyLow, UrgencyFor(8))
	assert.Equal(t, dto.UrgencyLow, UrgencyFor(120))
}
