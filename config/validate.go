package config

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NumberPrefixPattern is the character class of a quote number prefix.
// Quote numbers are checked against it when exports carry them back.
const NumberPrefixPattern = `[A-Z0-9]+`

var numberPrefixRe = regexp.MustCompile(`^` + NumberPrefixPattern + `$`)

// Validate checks the values Load cannot fix up on its own.
func (c *Config) Validate() error {
	return validation.Errors{
		"company": validation.ValidateStruct(&c.Company,
			validation.Field(&c.Company.Name, validation.Required),
			validation.Field(&c.Company.Email, is.EmailFormat),
		),
		"quote": validation.ValidateStruct(&c.Quote,
			validation.Field(&c.Quote.Currency, validation.Required, validation.Length(3, 3)),
			validation.Field(&c.Quote.NumberPrefix, validation.Required,
				validation.Match(numberPrefixRe).Error("must be upper-case letters and digits")),
			validation.Field(&c.Quote.ValidityDays, validation.Required, validation.Min(1)),
			validation.Field(&c.Quote.DepositPercent, validation.Min(0), validation.Max(100)),
		),
		"sheet": validation.ValidateStruct(&c.Sheet,
			validation.Field(&c.Sheet.Endpoint, is.URL),
			validation.Field(&c.Sheet.Timeout, validation.Required, validation.Min(time.Second)),
		),
		"mail": validation.ValidateStruct(&c.Mail,
			validation.Field(&c.Mail.SenderEmail, is.EmailFormat),
		),
	}.Filter()
}
