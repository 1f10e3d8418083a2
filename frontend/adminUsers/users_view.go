package adminusers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
	"slipdesk/frontend/shared/nav"
)

func UsersScreen(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.FromContext(ctx, "/desk/admin/users"))
		b.WriteString(`<main class="admin-users"><h1>Users</h1>`)
		if data.Status != "" {
			fmt.Fprintf(&b, `<p class="status">%s</p>`, templ.EscapeString(data.Status))
		}
		if data.ErrorMessage != "" {
			fmt.Fprintf(&b, `<p class="error">%s</p>`, templ.EscapeString(data.ErrorMessage))
		}

		b.WriteString(`<table><thead><tr><th>ID</th><th>Username</th><th>Role</th></tr></thead><tbody>`)
		for _, user := range data.Users {
			fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>`,
				user.ID, templ.EscapeString(user.Username), templ.EscapeString(user.Role))
		}
		b.WriteString(`</tbody></table>`)

		b.WriteString(`<h2>Create user</h2>
<form method="POST" action="/desk/admin/users">
<label>Username <input type="text" name="username" required></label>
<label>Password <input type="password" name="password" required></label>
<label>Role
<select name="role">
<option value="staff">staff</option>
<option value="admin">admin</option>
</select>
</label>
<button type="submit">Create</button>
</form></main>`)
		_, err := io.WriteString(w, html.RenderLayout("Users", b.String()+html.CSRFFormScript()))
		return err
	})
}
