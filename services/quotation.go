package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"webquote/config"
	"webquote/pricing"
)

// ErrInvalidQuoteNumber is returned when a carried-over quote number is malformed.
var ErrInvalidQuoteNumber = errors.New("invalid quote number")

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{6,20}$`)

// ClientInfo is who the quotation is addressed to. Only the full name is
// required.
type ClientInfo struct {
	FullName    string `json:"fullName" form:"fullName"`
	Email       string `json:"email,omitempty" form:"email"`
	CompanyName string `json:"companyName,omitempty" form:"companyName"`
	PhoneNumber string `json:"phoneNumber,omitempty" form:"phoneNumber"`
}

// Normalize trims surrounding whitespace from every field.
func (c ClientInfo) Normalize() ClientInfo {
	return ClientInfo{
		FullName:    strings.TrimSpace(c.FullName),
		Email:       strings.TrimSpace(c.Email),
		CompanyName: strings.TrimSpace(c.CompanyName),
		PhoneNumber: strings.TrimSpace(c.PhoneNumber),
	}
}

// Validate checks the normalized client details.
func (c ClientInfo) Validate() error {
	c = c.Normalize()
	return validation.ValidateStruct(&c,
		validation.Field(&c.FullName, validation.Required, validation.Length(1, 120)),
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.CompanyName, validation.Length(0, 160)),
		validation.Field(&c.PhoneNumber, validation.Match(phonePattern).Error("must contain only digits, spaces and + - ( )")),
	)
}

// Quotation is a priced selection issued to a client. It is assembled per
// request and never stored.
type Quotation struct {
	QuoteNumber string                   `json:"quoteNumber"`
	IssuedAt    time.Time                `json:"issuedAt"`
	ValidUntil  time.Time                `json:"validUntil"`
	Currency    string                   `json:"currency"`
	Client      ClientInfo               `json:"client"`
	Calculation pricing.QuoteCalculation `json:"calculation"`
}

// Date is the display form of IssuedAt.
func (q *Quotation) Date() string {
	return FormatDate(q.IssuedAt)
}

// ValidUntilDate is the display form of ValidUntil.
func (q *Quotation) ValidUntilDate() string {
	return FormatDate(q.ValidUntil)
}

// RoundedTotal is the total in whole currency units.
func (q *Quotation) RoundedTotal() int64 {
	return RoundCurrency(q.Calculation.Total)
}

// NewQuotation issues a quotation for calc with a fresh quote number.
func NewQuotation(calc pricing.QuoteCalculation, client ClientInfo, cfg config.QuoteConfig, now time.Time) (*Quotation, error) {
	return RestoreQuotation(calc, client, NewQuoteNumber(cfg.NumberPrefix, now), now, cfg)
}

// RestoreQuotation rebuilds a quotation from a number and issue date issued
// earlier, as exports do.
func RestoreQuotation(calc pricing.QuoteCalculation, client ClientInfo, number string, issuedAt time.Time, cfg config.QuoteConfig) (*Quotation, error) {
	if !ValidQuoteNumber(number) {
		return nil, ErrInvalidQuoteNumber
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	return &Quotation{
		QuoteNumber: number,
		IssuedAt:    issuedAt,
		ValidUntil:  issuedAt.AddDate(0, 0, cfg.ValidityDays),
		Currency:    cfg.Currency,
		Client:      client.Normalize(),
		Calculation: calc,
	}, nil
}
