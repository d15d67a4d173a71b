// Package config provides configuration management.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"webquote/logging"
)

// Environment variables that override the file.
const (
	EnvSheetEndpoint = "WEBQUOTE_SHEET_ENDPOINT"
	EnvCatalog       = "WEBQUOTE_CATALOG"
)

// Config is the main application configuration
type Config struct {
	Company CompanyConfig
	Quote   QuoteConfig

	// CatalogPath is the HCL catalog seeded into an empty store.
	// Empty means the built-in catalog.
	CatalogPath string

	Sheet   SheetConfig
	Mail    MailConfig
	Logging logging.Config
}

// CompanyConfig is the studio printed on quotations and contracts.
type CompanyConfig struct {
	Name         string
	Tagline      string
	Email        string
	Phone        string
	Website      string
	Jurisdiction string
}

// QuoteConfig controls quotation numbering and commercial terms.
type QuoteConfig struct {
	Currency       string
	NumberPrefix   string
	ValidityDays   int
	DepositPercent int
}

// SheetConfig is the spreadsheet webhook that receives submitted quotes.
type SheetConfig struct {
	// Endpoint disables the push when empty.
	Endpoint string
	Timeout  time.Duration
}

// MailConfig overrides the PocketBase sender; empty fields fall back to
// the app's mail settings.
type MailConfig struct {
	Enabled     bool
	SenderName  string
	SenderEmail string
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Company: CompanyConfig{
			Name:         "Build IT",
			Tagline:      "Professional Website Solutions",
			Email:        "info@buildit.com",
			Phone:        "+254 7XX XXX XXX",
			Website:      "www.buildit.com",
			Jurisdiction: "Kenya",
		},
		Quote: QuoteConfig{
			Currency:       "KES",
			NumberPrefix:   "UW",
			ValidityDays:   14,
			DepositPercent: 50,
		},
		Sheet: SheetConfig{
			Timeout: 10 * time.Second,
		},
		Mail: MailConfig{
			Enabled: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// file is the HCL shape of webquote.hcl. Every block and attribute is
// optional; whatever is set overrides Default().
type file struct {
	CatalogPath *string         `hcl:"catalog,optional"`
	Company     *companyBlock   `hcl:"company,block"`
	Quote       *quoteBlock     `hcl:"quote,block"`
	Sheet       *sheetBlock     `hcl:"sheet,block"`
	Mail        *mailBlock      `hcl:"mail,block"`
	Logging     *logging.Config `hcl:"logging,block"`
}

type companyBlock struct {
	Name         *string `hcl:"name,optional"`
	Tagline      *string `hcl:"tagline,optional"`
	Email        *string `hcl:"email,optional"`
	Phone        *string `hcl:"phone,optional"`
	Website      *string `hcl:"website,optional"`
	Jurisdiction *string `hcl:"jurisdiction,optional"`
}

type quoteBlock struct {
	Currency       *string `hcl:"currency,optional"`
	NumberPrefix   *string `hcl:"number_prefix,optional"`
	ValidityDays   *int    `hcl:"validity_days,optional"`
	DepositPercent *int    `hcl:"deposit_percent,optional"`
}

type sheetBlock struct {
	Endpoint *string `hcl:"endpoint,optional"`
	Timeout  *string `hcl:"timeout,optional"`
}

type mailBlock struct {
	Enabled     *bool   `hcl:"enabled,optional"`
	SenderName  *string `hcl:"sender_name,optional"`
	SenderEmail *string `hcl:"sender_email,optional"`
}

// Load reads configuration from an HCL file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	src, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := cfg.decode(src, path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(src []byte, filename string) error {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parse config: %s", diags.Error())
	}
	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return fmt.Errorf("decode config: %s", diags.Error())
	}

	setString(&c.CatalogPath, raw.CatalogPath)
	if b := raw.Company; b != nil {
		setString(&c.Company.Name, b.Name)
		setString(&c.Company.Tagline, b.Tagline)
		setString(&c.Company.Email, b.Email)
		setString(&c.Company.Phone, b.Phone)
		setString(&c.Company.Website, b.Website)
		setString(&c.Company.Jurisdiction, b.Jurisdiction)
	}
	if b := raw.Quote; b != nil {
		setString(&c.Quote.Currency, b.Currency)
		setString(&c.Quote.NumberPrefix, b.NumberPrefix)
		if b.ValidityDays != nil {
			c.Quote.ValidityDays = *b.ValidityDays
		}
		if b.DepositPercent != nil {
			c.Quote.DepositPercent = *b.DepositPercent
		}
	}
	if b := raw.Sheet; b != nil {
		setString(&c.Sheet.Endpoint, b.Endpoint)
		if b.Timeout != nil {
			d, err := time.ParseDuration(*b.Timeout)
			if err != nil {
				return fmt.Errorf("sheet timeout: %w", err)
			}
			c.Sheet.Timeout = d
		}
	}
	if b := raw.Mail; b != nil {
		if b.Enabled != nil {
			c.Mail.Enabled = *b.Enabled
		}
		setString(&c.Mail.SenderName, b.SenderName)
		setString(&c.Mail.SenderEmail, b.SenderEmail)
	}
	if l := raw.Logging; l != nil {
		if l.Level != "" {
			c.Logging.Level = l.Level
		}
		if l.Format != "" {
			c.Logging.Format = l.Format
		}
		if l.Output != "" {
			c.Logging.Output = l.Output
		}
		c.Logging.Development = l.Development
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvSheetEndpoint)); v != "" {
		c.Sheet.Endpoint = v
	}
	if v := strings.TrimSpace(getenv(EnvCatalog)); v != "" {
		c.CatalogPath = v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
