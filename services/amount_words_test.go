package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		expect   string
	}{
		{"zero", "0", "KES", "Zero Kenya Shillings Only"},
		{"teens", "15", "KES", "Fifteen Kenya Shillings Only"},
		{"hundred and", "105", "KES", "One Hundred and Five Kenya Shillings Only"},
		{"scenario A", "37200", "KES", "Thirty Seven Thousand Two Hundred Kenya Shillings Only"},
		{"scenario C", "42900", "KES", "Forty Two Thousand Nine Hundred Kenya Shillings Only"},
		{"hundreds of thousands", "125000", "KES", "One Hundred and Twenty Five Thousand Kenya Shillings Only"},
		{"million", "1000001", "KES", "One Million and One Kenya Shillings Only"},
		{"rounded", "99.5", "USD", "One Hundred US Dollars Only"},
		{"unknown currency", "2", "EUR", "Two EUR Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountToWords(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.expect {
				t.Errorf("AmountToWords(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.expect)
			}
		})
	}
}
