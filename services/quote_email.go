package services

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/mail"

	"github.com/pocketbase/pocketbase/tools/mailer"
	"go.uber.org/zap"

	"webquote/logging"
)

// MailClientFactory hands out a mail client built from the current mail
// settings. core.App satisfies it.
type MailClientFactory interface {
	NewMailClient() mailer.Mailer
}

var quoteEmailTmpl = template.Must(template.New("quote_email").Funcs(template.FuncMap{
	"money": FormatMoney,
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #212529;">
  <h2 style="color: #2563eb;">{{.Company.Name}}</h2>
  <p>Dear {{.Client.FullName}},</p>
  <p>Thank you for your interest. Please find your website quotation attached.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Quote #</strong></td><td>{{.QuoteNumber}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Website Type</strong></td><td>{{.WebsiteType}}</td></tr>
    {{- range .Features}}
    <tr><td><strong>Add-on</strong></td><td>{{.Name}}</td></tr>
    {{- end}}
    {{- if .HostingPlan}}
    <tr><td><strong>Hosting</strong></td><td>{{.HostingPlan}}</td></tr>
    {{- end}}
    <tr><td><strong>Timeline</strong></td><td>{{.Timeline}}</td></tr>
    <tr><td><strong>Service Type</strong></td><td>{{.ServiceType}}</td></tr>
    <tr><td><strong>Total</strong></td><td><strong>{{money .Total .Currency}}</strong></td></tr>
  </table>
  <p>This quotation is valid until {{.ValidUntil}}.</p>
  <p>Kind regards,<br>{{.Company.Name}}{{if .Company.Phone}}<br>{{.Company.Phone}}{{end}}</p>
</body>
</html>`))

// QuoteMailer emails quotations to clients through the PocketBase mailer.
type QuoteMailer struct {
	clients MailClientFactory
	from    mail.Address
	docs    *QuoteDocuments
	log     *zap.Logger
}

// NewQuoteMailer returns a mailer sending as from.
func NewQuoteMailer(clients MailClientFactory, from mail.Address, docs *QuoteDocuments) *QuoteMailer {
	return &QuoteMailer{
		clients: clients,
		from:    from,
		docs:    docs,
		log:     logging.Named("mailer"),
	}
}

// QuoteEmailSubject is the subject line for a quotation email.
func QuoteEmailSubject(quoteNumber string) string {
	return "Your Website Quote - " + quoteNumber
}

// RenderQuoteEmail renders the HTML body for a quotation email.
func RenderQuoteEmail(data *QuoteExportData) (string, error) {
	var buf bytes.Buffer
	if err := quoteEmailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render quote email: %w", err)
	}
	return buf.String(), nil
}

// Send emails q with the quotation PDF attached. Clients without an email
// address are skipped.
func (m *QuoteMailer) Send(q *Quotation, pdf []byte) error {
	if q.Client.Email == "" {
		m.log.Debug("no client email, skipping", logging.Quote(q.QuoteNumber))
		return nil
	}

	html, err := RenderQuoteEmail(m.docs.Data(q))
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		From:    m.from,
		To:      []mail.Address{{Name: q.Client.FullName, Address: q.Client.Email}},
		Subject: QuoteEmailSubject(q.QuoteNumber),
		HTML:    html,
	}
	if len(pdf) > 0 {
		msg.Attachments = map[string]io.Reader{
			"quotation-" + q.QuoteNumber + ".pdf": bytes.NewReader(pdf),
		}
	}

	if err := m.clients.NewMailClient().Send(msg); err != nil {
		return fmt.Errorf("send quote email: %w", err)
	}

	m.log.Info("emailed quotation", logging.Quote(q.QuoteNumber), zap.String("to", q.Client.Email))
	return nil
}
