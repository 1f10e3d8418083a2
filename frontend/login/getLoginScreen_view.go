package login

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"slipdesk/frontend/shared/html"
)

// GetLoginScreen is the login form with an optional error banner.
func GetLoginScreen(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := `<main class="login"><h1>slipdesk</h1>`
		if errorMessage != "" {
			body += fmt.Sprintf(`<p class="error">%s</p>`, templ.EscapeString(errorMessage))
		}
		body += `<form method="POST" action="/login">
<label>Username <input type="text" name="username" autofocus></label>
<label>Password <input type="password" name="password"></label>
<button type="submit">Sign in</button>
</form></main>`
		_, err := io.WriteString(w, html.RenderLayout("Sign in", body+html.CSRFFormScript()))
		return err
	})
}
