package model

import "time"

// GoalPriority indicates how urgent a savings goal is.
type GoalPriority string

const (
	// PriorityHigh marks goals that should be funded first.
	PriorityHigh GoalPriority = "High"
	// PriorityMedium is the default urgency.
	PriorityMedium GoalPriority = "Medium"
	// PriorityLow marks nice-to-have goals.
	PriorityLow GoalPriority = "Low"
)

// GoalCategory groups goals by time horizon. Optional; the zero value means
// uncategorized.
type GoalCategory string

const (
	// GoalShortTerm covers goals expected to complete within roughly a year.
	GoalShortTerm GoalCategory = "Short-term"
	// GoalLongTerm covers multi-year goals.
	GoalLongTerm GoalCategory = "Long-term"
)

// Goal represents a savings target. CurrentAmount only ever increases, via
// contributions; it is not clamped at TargetAmount, so a goal can be funded
// past its target.
type Goal struct {
	DueDate       time.Time
	ID            string
	Title         string
	Priority      GoalPriority
	Category      GoalCategory
	// Icon is an opaque display reference (e.g. "piggy-bank"); rendering is
	// resolved by the presentation layer, never here.
	Icon          string
	TargetAmount  float64
	CurrentAmount float64
}

// Progress returns the funded fraction of the target. Can exceed 1 for
// over-funded goals.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// Remaining returns the amount still needed to reach the target, never
// negative.
func (g Goal) Remaining() float64 {
	if g.CurrentAmount >= g.TargetAmount {
		return 0
	}
	return g.TargetAmount - g.CurrentAmount
}
