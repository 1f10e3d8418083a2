package settings

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
)

func SettingsPage(settings AppSettings, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/settings"))
		b.WriteString(`<main class="settings"><h1>Settings</h1>`)
		if status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(status))
		}
		b.WriteString(`<form method="POST" action="/desk/settings">`)
		fmt.Fprintf(&b, `<label>Sender address<textarea name="sender_block" rows="6">%s</textarea></label>`,
			templ.EscapeString(settings.SenderBlock))
		fmt.Fprintf(&b, `<label>Unit weight (grams)<input type="number" name="unit_weight_grams" value="%d" min="1"></label>`,
			settings.UnitWeightGrams)
		fmt.Fprintf(&b, `<label>Home state<input type="text" name="home_state" value="%s"></label>`,
			templ.EscapeString(settings.HomeState))
		fmt.Fprintf(&b, `<label>Home state shipping cost<input type="text" name="home_shipping_cost" value="%s"></label>`,
			templ.EscapeString(settings.HomeShippingCost.String()))
		fmt.Fprintf(&b, `<label>Other state shipping cost<input type="text" name="other_shipping_cost" value="%s"></label>`,
			templ.EscapeString(settings.OtherShippingCost.String()))
		b.WriteString(`<button type="submit">Save</button></form></main>`)
		_, err := io.WriteString(w, html.RenderLayout("Settings", b.String()+html.CSRFFormScript()))
		return err
	})
}
