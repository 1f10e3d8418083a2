package nav

import (
	"context"
	"fmt"
	"strings"

	sessioncontext "slipdesk/frontend/shared/context"
	"slipdesk/infrastructure/rbac"
	"slipdesk/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username string
	Role     string
}

func BuildTopNavData(session models.Session) TopNavData {
	return TopNavData{Username: session.User.Username, Role: session.User.Role}
}

type navLink struct {
	Label     string
	Href      string
	AdminOnly bool
}

var navLinks = []navLink{
	{Label: "Orders", Href: "/desk/orders"},
	{Label: "Slips", Href: "/desk/slips"},
	{Label: "Manifest", Href: "/desk/manifest"},
	{Label: "Tracking", Href: "/desk/tracking"},
	{Label: "Campaign", Href: "/desk/campaign"},
	{Label: "Invoice", Href: "/desk/invoice"},
	{Label: "Settings", Href: "/desk/settings", AdminOnly: true},
	{Label: "Users", Href: "/desk/admin/users", AdminOnly: true},
}

// FromContext renders the navigation bar for the logged-in session, or
// nothing when the request is unauthenticated.
func FromContext(ctx context.Context, activeHref string) string {
	session, ok := sessioncontext.GetSessionFromContext(ctx)
	if !ok {
		return ""
	}
	return RenderTopNav(BuildTopNavData(session), activeHref)
}

// RenderTopNav builds the shared navigation bar markup.
func RenderTopNav(data TopNavData, activeHref string) string {
	var b strings.Builder
	b.WriteString(`<nav class="topnav"><span class="brand">slipdesk</span><ul>`)
	for _, link := range navLinks {
		if link.AdminOnly && data.Role != rbac.RoleAdmin {
			continue
		}
		cls := ""
		if link.Href == activeHref {
			cls = ` class="active"`
		}
		fmt.Fprintf(&b, `<li%s><a href="%s">%s</a></li>`, cls, link.Href, link.Label)
	}
	b.WriteString(`</ul><div class="whoami">`)
	fmt.Fprintf(&b, `<span>%s (%s)</span>`, data.Username, data.Role)
	b.WriteString(`<form method="POST" action="/logout"><button type="submit">Logout</button></form></div></nav>`)
	return b.String()
}
