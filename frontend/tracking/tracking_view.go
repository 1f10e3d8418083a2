package tracking

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
	"slipdesk/models"
)

func TrackingScreen(updates []models.TrackingUpdate, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/tracking"))
		b.WriteString(`<main class="tracking"><h1>Update Tracking</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		b.WriteString(`<form method="POST" action="/desk/tracking">
<label>Order number <input type="text" name="order_number" required></label>
<label>Tracking number <input type="text" name="tracking_number" required></label>
<button type="submit">Update</button>
</form>`)

		if len(updates) > 0 {
			b.WriteString(`<section class="history"><h2>Recent updates</h2><table><thead><tr><th>When</th><th>Order</th><th>Tracking</th><th>Synced</th></tr></thead><tbody>`)
			for _, update := range updates {
				synced := "no"
				if update.Synced {
					synced = "yes"
				}
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					update.CreatedAt.Format("02-01-2006 15:04"),
					templ.EscapeString(update.OrderNumber),
					templ.EscapeString(update.TrackingNumber),
					synced)
			}
			b.WriteString(`</tbody></table>
<form method="POST" action="/desk/tracking/clear"><button type="submit">Clear history</button></form>
</section>`)
		}

		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Tracking", b.String()+html.CSRFFormScript()))
		return err
	})
}
