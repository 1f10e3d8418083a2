package invoice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
)

func InvoiceScreen(status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/invoice"))
		b.WriteString(`<main class="invoice"><h1>GST Invoice</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		b.WriteString(`<form method="POST" action="/desk/invoice/pdf">
<label>Invoice number <input type="text" name="invoice_number" required></label>
<label>Customer <input type="text" name="customer_name" required></label>
<label>Billing address <textarea name="billing_address" rows="3"></textarea></label>
<label>Billing GSTIN <input type="text" name="billing_gstin"></label>
<label>Shipping address <textarea name="shipping_address" rows="3"></textarea></label>
<label>Shipping GSTIN <input type="text" name="shipping_gstin"></label>
<label>Tax type
<select name="tax_type">
<option value="CGST/SGST">CGST/SGST (intra-state)</option>
<option value="IGST">IGST (inter-state)</option>
</select>
</label>
<fieldset><legend>Lines (unit price incl. GST)</legend>`)
		for i := 0; i < 4; i++ {
			b.WriteString(`<div class="line">
<input type="text" name="description" placeholder="Description">
<input type="number" name="quantity" value="1" min="1">
<input type="text" name="unit_price" placeholder="0.00">
<input type="text" name="discount" placeholder="0.00">
</div>`)
		}
		b.WriteString(`</fieldset>
<button type="submit">Generate invoice</button>
</form></main>`)
		_, err := io.WriteString(w, html.RenderLayout("GST Invoice", b.String()+html.CSRFFormScript()))
		return err
	})
}
