package model

import (
	"math"
	"time"
)

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	// BillPending means the bill has not been paid yet.
	BillPending BillStatus = "Pending"
	// BillPaid is the terminal state; there is no un-pay transition.
	BillPaid BillStatus = "Paid"
	// BillOverdue is a display-time classification for pending bills whose
	// due date has passed. It is never stored.
	BillOverdue BillStatus = "Overdue"
)

// Bill represents a recurring payment obligation. The stored status only
// ever holds Pending or Paid.
type Bill struct {
	DueDate time.Time
	ID      string
	Title   string
	Status  BillStatus
	Amount  float64
}

// EffectiveStatus classifies the bill for display: a pending bill whose due
// date is before today reads as Overdue.
func (b Bill) EffectiveStatus(now time.Time) BillStatus {
	if b.Status != BillPaid && b.DaysUntilDue(now) < 0 {
		return BillOverdue
	}
	return b.Status
}

// DaysUntilDue returns the number of calendar days until the due date,
// negative when the bill is past due.
func (b Bill) DaysUntilDue(now time.Time) int {
	diff := b.DueDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
