package slips

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
)

func GetSlipsScreen(status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/slips"))
		b.WriteString(`<main class="slips"><h1>Shipping Slips</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}
		b.WriteString(`<form method="POST" action="/desk/slips/pdf">
<label>Shipment lines (one per line, tab separated)
<textarea name="shipment_lines" rows="12" placeholder="status&#9;date&#9;order&#9;qty&#9;&#9;mode&#9;address Phone 9876543210"></textarea>
</label>
<label>Slips per page
<select name="items_per_page">
<option value="1">1 (4x6 sheet)</option>
<option value="2">2</option>
<option value="4">4</option>
<option value="6">6</option>
</select>
</label>
<button type="submit">Generate PDF</button>
</form></main>`)
		_, err := io.WriteString(w, html.RenderLayout("Shipping Slips", b.String()+html.CSRFFormScript()))
		return err
	})
}
