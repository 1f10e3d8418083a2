package campaign

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
	"slipdesk/infrastructure/webhook"
)

func CampaignScreen(history *webhook.CustomerHistory, stats CampaignStats, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/campaign"))
		b.WriteString(`<main class="campaign"><h1>Repeat Campaign</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		b.WriteString(`<form method="POST" action="/desk/campaign">
<label>Customer phone <input type="text" name="phone" placeholder="9876543210" autofocus></label>
<button type="submit">Look up</button>
</form>`)

		if history != nil {
			fmt.Fprintf(&b, `<section class="customer"><h2>%s</h2><p>%s</p>`,
				templ.EscapeString(history.CustomerName),
				templ.EscapeString(history.Phone))
			if history.Email != "" {
				fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(history.Email))
			}
			repeat := "first-time customer"
			if stats.IsRepeat {
				repeat = "repeat customer"
			}
			fmt.Fprintf(&b, `<p class="stats">%d orders, %d items, total %s (%s)</p>`,
				stats.OrderCount, stats.TotalQuantity, stats.TotalSpent.StringFixed(2), repeat)
			if stats.LastOrderDate != "" {
				fmt.Fprintf(&b, `<p>Last order: %s</p>`, templ.EscapeString(stats.LastOrderDate))
			}
			b.WriteString(`</section>`)

			b.WriteString(`<table><thead><tr><th>Order</th><th>Date</th><th>Product</th><th>Qty</th><th>Total</th></tr></thead><tbody>`)
			for _, order := range history.Orders {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
					templ.EscapeString(order.OrderNumber),
					templ.EscapeString(order.OrderDate),
					templ.EscapeString(order.ProductName),
					order.Quantity,
					templ.EscapeString(order.Total))
			}
			b.WriteString(`</tbody></table>`)
		}

		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Repeat Campaign", b.String()+html.CSRFFormScript()))
		return err
	})
}
