package services

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DateLayout is how quotation dates are displayed, e.g. "January 2, 2006".
const DateLayout = "January 2, 2006"

// RoundCurrency rounds an exact amount to whole currency units, halves away
// from zero.
func RoundCurrency(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

// FormatMoney renders an amount rounded to whole units with thousands
// separators, e.g. "KES 37,200".
func FormatMoney(amount decimal.Decimal, currency string) string {
	return currency + " " + humanize.Comma(RoundCurrency(amount))
}

// FormatMarkup is FormatMoney with an explicit plus sign, used for markup lines.
func FormatMarkup(amount decimal.Decimal, currency string) string {
	return "+" + FormatMoney(amount, currency)
}

// FormatMultiplier renders a multiplier as "×1.2".
func FormatMultiplier(m decimal.Decimal) string {
	return "×" + m.String()
}

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
