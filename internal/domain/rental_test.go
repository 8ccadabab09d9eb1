package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  RentalStatus
		endDate time.Time
		want    bool
	}{
		{"active past due", RentalStatusActive, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"active due today", RentalStatusActive, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"active due tomorrow", RentalStatusActive, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"completed past due", RentalStatusCompleted, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Rental{Status: tt.status, EndDate: tt.endDate}
			assert.Equal(t, tt.want, r.IsOverdue(now))
		})
	}
}
