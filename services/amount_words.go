package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyNames spells out the currencies quotations are issued in.
var currencyNames = map[string]string{
	"KES": "Kenya Shillings",
	"UGX": "Uganda Shillings",
	"TZS": "Tanzania Shillings",
	"USD": "US Dollars",
}

// AmountToWords converts an amount, rounded to whole units, to English words.
// Example: 37200 KES → "Thirty Seven Thousand Two Hundred Kenya Shillings Only"
func AmountToWords(amount decimal.Decimal, currency string) string {
	name, ok := currencyNames[currency]
	if !ok {
		name = currency
	}

	units := RoundCurrency(amount)
	if units < 0 {
		return "Negative " + AmountToWords(decimal.NewFromInt(-units), currency)
	}
	if units == 0 {
		return "Zero " + name + " Only"
	}
	return convertToWords(units) + " " + name + " Only"
}

// convertToWords uses short-scale grouping: billions, millions, thousands.
func convertToWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	for _, scale := range []struct {
		value int64
		name  string
	}{
		{1_000_000_000, "Billion"},
		{1_000_000, "Million"},
		{1_000, "Thousand"},
	} {
		if n >= scale.value {
			parts = append(parts, convertUnder1000(n/scale.value)+" "+scale.name)
			n %= scale.value
		}
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n < 100 {
		return convertUnder100(n)
	}
	result := ones[n/100] + " Hundred"
	if n%100 != 0 {
		result += " and " + convertUnder100(n%100)
	}
	return result
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
