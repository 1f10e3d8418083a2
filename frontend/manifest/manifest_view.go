package manifest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
)

func ManifestScreen(entries []Entry, summary Summary, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/manifest"))
		b.WriteString(`<main class="manifest"><h1>Manifest</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		fmt.Fprintf(&b, `<section class="summary"><span>Scanned: %d</span><span>Matched: %d</span><span>Unmatched: %d</span><span>Reference: %d</span></section>`,
			summary.TotalEntries, summary.MatchedCount, summary.UnmatchedCount, summary.ReferenceCount)
		if len(summary.Duplicates) > 0 {
			fmt.Fprintf(&b, `<p class="duplicates">Duplicates: %s</p>`, templ.EscapeString(strings.Join(summary.Duplicates, ", ")))
		}

		b.WriteString(`<form method="POST" action="/desk/manifest/scan" class="scan">
<input type="text" name="tracking_number" placeholder="Scan tracking number" autofocus>
<button type="submit">Record</button>
</form>`)

		b.WriteString(`<form method="POST" action="/desk/manifest/reference" enctype="multipart/form-data" class="reference">
<input type="file" name="reference_file" accept=".csv,.xlsx">
<button type="submit">Load reference</button>
<a href="/desk/manifest/export">Export CSV</a>
</form>`)

		b.WriteString(`<form method="POST" action="/desk/manifest/print" class="print">
<label>Slips per page
<select name="items_per_page">
<option value="1">1 (4x6 sheet)</option>
<option value="2">2</option>
<option value="4">4</option>
<option value="6">6</option>
</select>
</label>
<button type="submit">Print slips</button>
</form>`)

		b.WriteString(`<table><thead><tr><th>Tracking</th><th>Scans</th><th>Order</th><th>Customer</th><th>Match</th><th></th></tr></thead><tbody>`)
		for _, entry := range entries {
			rowClass := ""
			if entry.IsDuplicate {
				rowClass = ` class="duplicate"`
			}
			fmt.Fprintf(&b, `<tr%s><td>%s</td><td>%d</td><td>%s</td><td>%s</td>`,
				rowClass,
				templ.EscapeString(entry.TrackingNumber),
				entry.ScanCount,
				templ.EscapeString(entry.OrderID),
				templ.EscapeString(entry.CustomerName))
			if entry.IsFound {
				b.WriteString(`<td>found</td>`)
			} else {
				b.WriteString(`<td>not found</td>`)
			}
			b.WriteString(`<td>`)
			if entry.IsDuplicate {
				fmt.Fprintf(&b, `<form method="POST" action="/desk/manifest/resolve"><input type="hidden" name="tracking_number" value="%s"><button type="submit">Resolve</button></form>`,
					templ.EscapeString(entry.TrackingNumber))
			}
			fmt.Fprintf(&b, `<form method="POST" action="/desk/manifest/remove"><input type="hidden" name="tracking_number" value="%s"><button type="submit">Remove</button></form>`,
				templ.EscapeString(entry.TrackingNumber))
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table></main>`)

		_, err := io.WriteString(w, html.RenderLayout("Manifest", b.String()+html.CSRFFormScript()))
		return err
	})
}
