package services

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"webquote/config"
)

// quoteNumberPattern matches PREFIX-YYYYMMDD-NNN.
var quoteNumberPattern = regexp.MustCompile(`^` + config.NumberPrefixPattern + `-\d{8}-\d{3}$`)

// GenerateQuoteNumber builds a quote number.
// Format: {prefix}-{YYYYMMDD}-{sequence}
// - the date is the issue date in its own location
// - sequence: 3-digit zero-padded, taken modulo 1000
func GenerateQuoteNumber(prefix string, now time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, now.Format("20060102"), ((seq%1000)+1000)%1000)
}

// NewQuoteNumber draws a random sequence. Nothing is persisted, so numbers
// are not guaranteed unique across a day.
func NewQuoteNumber(prefix string, now time.Time) string {
	return GenerateQuoteNumber(prefix, now, rand.IntN(1000))
}

// ValidQuoteNumber reports whether s has the shape GenerateQuoteNumber produces.
func ValidQuoteNumber(s string) bool {
	return quoteNumberPattern.MatchString(s)
}
