package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalIcon(t *testing.T) {
	assert.Equal(t, "🐷", GoalIcon("piggy-bank"))
	assert.Equal(t, "✈️", GoalIcon("plane"))
	assert.Equal(t, "🎯", GoalIcon("no-such-icon"))
	assert.Equal(t, "🎯", GoalIcon(""))
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "🏠", CategoryIcon("Housing"))
	assert.Equal(t, "📦", CategoryIcon("Mystery"))
}
