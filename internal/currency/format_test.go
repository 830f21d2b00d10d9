package currency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount float64
	}{
		{name: "small amount has no grouping", amount: 580, want: "₹580"},
		{name: "thousands grouped", amount: 8432, want: "₹8,432"},
		{name: "lakh grouping", amount: 120000, want: "₹1,20,000"},
		{name: "ten lakh grouping", amount: 2000000, want: "₹20,00,000"},
		{name: "fractional shows paise", amount: 1250.5, want: "₹1,250.50"},
		{name: "zero", amount: 0, want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "28 Apr 2025", FormatDate(d))
}
