package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    time.Time
		status BillStatus
		want   BillStatus
	}{
		{
			name:   "pending before due date stays pending",
			due:    time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC),
			status: BillPending,
			want:   BillPending,
		},
		{
			name:   "pending past due date reads overdue",
			due:    time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			status: BillPending,
			want:   BillOverdue,
		},
		{
			name:   "paid never reads overdue",
			due:    time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			status: BillPaid,
			want:   BillPaid,
		},
		{
			name:   "due later today is not overdue",
			due:    time.Date(2025, time.May, 10, 23, 0, 0, 0, time.UTC),
			status: BillPending,
			want:   BillPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bill{DueDate: tt.due, Status: tt.status}
			assert.Equal(t, tt.want, b.EffectiveStatus(now))
		})
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	b := Bill{DueDate: time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 5, b.DaysUntilDue(now))

	overdue := Bill{DueDate: time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, -3, overdue.DaysUntilDue(now))

	today := Bill{DueDate: now}
	assert.Equal(t, 0, today.DaysUntilDue(now))
}
