package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"zero", "0", "KES 0"},
		{"small integer", "5", "KES 5"},
		{"hundreds", "999", "KES 999"},
		{"thousands", "1234", "KES 1,234"},
		{"scenario total", "37200", "KES 37,200"},
		{"millions", "1234567", "KES 1,234,567"},
		{"half rounds up", "9900.5", "KES 9,901"},
		{"below half rounds down", "42899.49", "KES 42,899"},
		{"float noise", "9900.000000000002", "KES 9,900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tt.input), "KES")
			if got != tt.expect {
				t.Errorf("FormatMoney(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		input  string
		expect int64
	}{
		{"0", 0},
		{"0.5", 1},
		{"1.49", 1},
		{"42900", 42900},
		{"2500.5", 2501},
	}
	for _, tt := range tests {
		got := RoundCurrency(decimal.RequireFromString(tt.input))
		if got != tt.expect {
			t.Errorf("RoundCurrency(%s) = %d, want %d", tt.input, got, tt.expect)
		}
	}
}

func TestFormatMarkupAndMultiplier(t *testing.T) {
	if got := FormatMarkup(decimal.NewFromInt(6200), "KES"); got != "+KES 6,200" {
		t.Errorf("FormatMarkup = %q", got)
	}
	if got := FormatMultiplier(decimal.RequireFromString("1.5")); got != "×1.5" {
		t.Errorf("FormatMultiplier = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 15, 4, 0, 0, time.UTC)
	if got := FormatDate(d); got != "March 7, 2025" {
		t.Errorf("FormatDate = %q, want %q", got, "March 7, 2025")
	}
}
