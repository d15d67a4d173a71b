package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"webquote/logging"
)

// SheetPayload is the row the spreadsheet webhook appends for each
// submitted quotation.
type SheetPayload struct {
	ClientName  string `json:"clientName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	WebsiteType string `json:"websiteType"`
	AddOns      string `json:"addOns"`
	Hosting     string `json:"hosting"`
	Urgency     string `json:"urgency"`
	Total       int64  `json:"total"`
	QuoteNumber string `json:"quoteNumber"`
	Notes       string `json:"notes"`
}

// NewSheetPayload flattens a quotation into a spreadsheet row.
func NewSheetPayload(q *Quotation) SheetPayload {
	calc := q.Calculation
	names := make([]string, len(calc.AddOns))
	for i, a := range calc.AddOns {
		names[i] = a.Name
	}
	return SheetPayload{
		ClientName:  q.Client.FullName,
		Email:       q.Client.Email,
		Phone:       q.Client.PhoneNumber,
		Company:     q.Client.CompanyName,
		WebsiteType: calc.WebsiteType.Name,
		AddOns:      strings.Join(names, ", "),
		Hosting:     calc.HostingPlan.Name,
		Urgency:     calc.UrgencyLevel.Name,
		Total:       q.RoundedTotal(),
		QuoteNumber: q.QuoteNumber,
		Notes:       "Builder: " + calc.BuilderType.Name,
	}
}

// SheetClient posts quotations to a spreadsheet webhook such as a Google
// Apps Script web app.
type SheetClient struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewSheetClient returns a client for endpoint. A nil httpClient gets one
// with the given timeout.
func NewSheetClient(endpoint string, timeout time.Duration, httpClient *http.Client) *SheetClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &SheetClient{
		endpoint: endpoint,
		http:     httpClient,
		log:      logging.Named("sheet"),
	}
}

// Enabled reports whether an endpoint is configured.
func (c *SheetClient) Enabled() bool {
	return c != nil && c.endpoint != ""
}

// Push sends one quotation. Any non-2xx response is an error.
func (c *SheetClient) Push(ctx context.Context, q *Quotation) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(NewSheetPayload(q))
	if err != nil {
		return fmt.Errorf("encode sheet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post to sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sheet responded %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Info("pushed quotation",
		logging.Quote(q.QuoteNumber),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode))
	return nil
}
