package orders

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

func OrdersScreen(orderList []models.Order, runs []models.SubmissionRun, prefill ExtractedOrder, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/orders"))
		b.WriteString(`<main class="orders"><h1>Orders</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		b.WriteString(`<section class="extract"><h2>Paste customer message</h2>
<form method="POST" action="/desk/orders/extract">
<textarea name="bulk_text" rows="5" placeholder="Paste customer details for automatic extraction"></textarea>
<button type="submit">Extract</button>
</form></section>`)

		prefillProduct, prefillQty, prefillPrice := "", int64(1), ""
		if len(prefill.Products) > 0 {
			prefillProduct = prefill.Products[0].ProductName
			prefillQty = prefill.Products[0].Quantity
			prefillPrice = prefill.Products[0].Price.StringFixed(2)
		}
		b.WriteString(`<section class="create"><h2>New order</h2><form method="POST" action="/desk/orders">`)
		b.WriteString(`<label>Order number <input type="text" name="order_number" required></label>`)
		fmt.Fprintf(&b, `<label>Customer <input type="text" name="customer_name" value="%s"></label>`,
			templ.EscapeString(prefill.CustomerName))
		fmt.Fprintf(&b, `<label>Phone <input type="text" name="phone" value="%s"></label>`,
			templ.EscapeString(prefill.Phone))
		fmt.Fprintf(&b, `<label>Address <textarea name="address" rows="3">%s</textarea></label>`,
			templ.EscapeString(prefill.Address))
		fmt.Fprintf(&b, `<label>Product <input type="text" name="product_name" value="%s"></label>`,
			templ.EscapeString(prefillProduct))
		fmt.Fprintf(&b, `<label>Quantity <input type="number" name="quantity" value="%d" min="1"></label>`, prefillQty)
		fmt.Fprintf(&b, `<label>Unit price <input type="text" name="unit_price" value="%s"></label>`,
			templ.EscapeString(prefillPrice))
		b.WriteString(`<label>Order date (DD-MM-YYYY) <input type="text" name="order_date" placeholder="today"></label>
<label>Shipping mode <input type="text" name="shipping_mode" value="Manual"></label>
<button type="submit">Create order</button>
</form></section>`)

		b.WriteString(`<form method="POST" action="/desk/orders/print" id="order-actions">
<table><thead><tr><th></th><th>Order</th><th>Date</th><th>Customer</th><th>Product</th><th>Qty</th><th>Status</th><th>Tracking</th><th></th></tr></thead><tbody>`)
		for _, order := range orderList {
			fmt.Fprintf(&b, `<tr><td><input type="checkbox" name="order_id" value="%s" form="order-actions"></td>`,
				templ.EscapeString(order.ID))
			fmt.Fprintf(&b, `<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td>`,
				templ.EscapeString(order.OrderNumber),
				order.OrderDate.Format("02-01-2006"),
				templ.EscapeString(order.CustomerName),
				templ.EscapeString(order.ProductName),
				order.Quantity,
				templ.EscapeString(order.Status),
				templ.EscapeString(order.TrackingNumber))
			fmt.Fprintf(&b, `<td><a href="/desk/orders/%s">Edit</a></td></tr>`, templ.EscapeString(order.ID))
		}
		b.WriteString(`</tbody></table>
<label>Slips per page
<select name="items_per_page">
<option value="1">1 (4x6 sheet)</option>
<option value="2">2</option>
<option value="4">4</option>
<option value="6">6</option>
</select>
</label>
<button type="submit">Print slips</button>
<button type="submit" formaction="/desk/orders/submit">Submit upstream</button>
</form>`)

		if len(runs) > 0 {
			b.WriteString(`<section class="history"><h2>Submission history</h2><table><thead><tr><th>When</th><th>Total</th><th>Succeeded</th><th>Failed</th></tr></thead><tbody>`)
			for _, run := range runs {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td></tr>`,
					run.CreatedAt.Format("02-01-2006 15:04"), run.Total, run.Succeeded, run.Failed)
			}
			b.WriteString(`</tbody></table></section>`)
		}

		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Orders", b.String()+html.CSRFFormScript()))
		return err
	})
}

// EditOrderScreen is the per-order edit form with the note trail.
func EditOrderScreen(order models.Order, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/orders"))
		fmt.Fprintf(&b, `<main class="order-edit"><h1>Order %s</h1>`, templ.EscapeString(order.OrderNumber))
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}

		fmt.Fprintf(&b, `<form method="POST" action="/desk/orders/%s/update">`, templ.EscapeString(order.ID))
		fmt.Fprintf(&b, `<input type="hidden" name="order_number" value="%s">`, templ.EscapeString(order.OrderNumber))
		b.WriteString(`<label>Status <select name="status">`)
		for _, s := range []string{
			models.OrderStatusProcessing, models.OrderStatusInTransit,
			models.OrderStatusDelivered, models.OrderStatusCancelled,
		} {
			selected := ""
			if s == order.Status {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, s, selected, s)
		}
		b.WriteString(`</select></label>`)
		fmt.Fprintf(&b, `<label>Customer <input type="text" name="customer_name" value="%s"></label>`,
			templ.EscapeString(order.CustomerName))
		fmt.Fprintf(&b, `<label>Phone <input type="text" name="phone" value="%s"></label>`,
			templ.EscapeString(order.Phone))
		fmt.Fprintf(&b, `<label>Address <textarea name="address" rows="3">%s</textarea></label>`,
			templ.EscapeString(order.Address))
		fmt.Fprintf(&b, `<label>Product <input type="text" name="product_name" value="%s"></label>`,
			templ.EscapeString(order.ProductName))
		fmt.Fprintf(&b, `<label>Quantity <input type="number" name="quantity" value="%d" min="1"></label>`, order.Quantity)
		fmt.Fprintf(&b, `<label>Unit price <input type="text" name="unit_price" value="%s"></label>`,
			templ.EscapeString(order.UnitPrice.StringFixed(2)))
		fmt.Fprintf(&b, `<label>Order date <input type="text" name="order_date" value="%s"></label>`,
			order.OrderDate.Format("02-01-2006"))
		fmt.Fprintf(&b, `<label>Shipping mode <input type="text" name="shipping_mode" value="%s"></label>`,
			templ.EscapeString(order.ShippingMode))
		fmt.Fprintf(&b, `<label>Tracking number <input type="text" name="tracking_number" value="%s"></label>`,
			templ.EscapeString(order.TrackingNumber))
		b.WriteString(`<button type="submit">Save</button></form>`)

		fmt.Fprintf(&b, `<form method="POST" action="/desk/orders/%s/note"><label>Add note <input type="text" name="note"></label><button type="submit">Add</button></form>`,
			templ.EscapeString(order.ID))
		if order.Notes != "" {
			fmt.Fprintf(&b, `<pre class="notes">%s</pre>`, templ.EscapeString(order.Notes))
		}
		fmt.Fprintf(&b, `<form method="POST" action="/desk/orders/%s/delete"><button type="submit">Delete order</button></form>`,
			templ.EscapeString(order.ID))
		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Edit Order", b.String()+html.CSRFFormScript()))
		return err
	})
}
