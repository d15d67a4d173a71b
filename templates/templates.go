// Package templates holds the HTML views of the calculator as templ
// components.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

var (
	base = template.Must(template.New("").ParseFS(files, "html/layout.html"))

	calculatorPage = page("calculator.html")
	quotationPage  = page("quotation.html")
)

// page clones the shared layout and adds the page's "content" block.
func page(file string) *template.Template {
	t := template.Must(template.Must(base.Clone()).ParseFS(files, "html/"+file))
	return t.Lookup("layout")
}

// calculatorView is CalculatorData with the breakdown panel pre-rendered.
type calculatorView struct {
	CalculatorData
	BreakdownHTML template.HTML
}

// CalculatorPage renders the full calculator with the breakdown panel.
func CalculatorPage(data CalculatorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		panel, err := templ.ToGoHTML(ctx, BreakdownPanel(data.Breakdown))
		if err != nil {
			return err
		}
		return templ.FromGoHTML(calculatorPage, calculatorView{CalculatorData: data, BreakdownHTML: panel}).Render(ctx, w)
	})
}

// BreakdownPanel renders only the breakdown. It is the HTMX swap target of
// the calculator form.
func BreakdownPanel(data BreakdownData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section id="breakdown" class="breakdown"><h2>Cost Breakdown</h2>`)
		if data.Ready {
			b.WriteString("<table><tbody>")
			for _, line := range data.Lines {
				if line.Markup {
					b.WriteString(`<tr class="markup">`)
				} else {
					b.WriteString("<tr>")
				}
				fmt.Fprintf(&b, `<td>%s</td><td class="amount">%s</td></tr>`,
					templ.EscapeString(line.Label), templ.EscapeString(line.Amount))
			}
			fmt.Fprintf(&b, `</tbody><tfoot><tr class="total"><td>Total</td><td class="amount">%s</td></tr></tfoot></table>`,
				templ.EscapeString(data.Total))
		} else {
			fmt.Fprintf(&b, `<p class="not-ready">Select %s to see your quote.</p>`,
				templ.EscapeString(strings.Join(data.Missing, ", ")))
		}
		b.WriteString("</section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// QuotationPage renders an issued quotation with its export forms.
func QuotationPage(data QuotationData) templ.Component {
	return templ.FromGoHTML(quotationPage, data)
}
