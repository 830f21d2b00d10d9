package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Success("Added ₹580 expense for Chai Coffee")
	p.Show("Large Expense", "You spent ₹6,000 on Gift")

	out := buf.String()
	assert.Contains(t, out, "Added ₹580 expense for Chai Coffee")
	assert.Contains(t, out, "Large Expense")
	assert.Contains(t, out, "You spent ₹6,000 on Gift")
}

func TestRecorderDrain(t *testing.T) {
	r := &Recorder{}
	r.Success("first")
	r.Show("Bill Reminder", "due tomorrow")

	toasts := r.Drain()
	require.Len(t, toasts, 2)
	assert.True(t, toasts[0].Success)
	assert.Equal(t, "first", toasts[0].Message)
	assert.Equal(t, "Bill Reminder", toasts[1].Title)

	assert.Empty(t, r.Drain())
}
