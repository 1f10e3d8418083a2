package adminusers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	sharedcontext "slipdesk/frontend/shared/context"
	"slipdesk/infrastructure/sqlite"
)

// UsersPageQueryHandler lists all console users for administrators.
func UsersPageQueryHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sharedcontext.GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		pageData, err := LoadUsersPageData(r.Context(), db)
		if err != nil {
			slog.Error("failed to load users page", "error", err)
			http.Error(w, "failed to load users", http.StatusInternalServerError)
			return
		}
		pageData.Status = r.URL.Query().Get("status")
		pageData.ErrorMessage = r.URL.Query().Get("error")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UsersScreen(pageData).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render users screen", http.StatusInternalServerError)
			return
		}
	}
}

// CreateUserCommandHandler creates a console user with the submitted role.
func CreateUserCommandHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/admin/users?error="+url.QueryEscape("invalid form"), http.StatusSeeOther)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		role := r.FormValue("role")

		err := CreateUser(r.Context(), db, username, password, role)
		switch {
		case err == nil:
			http.Redirect(w, r, "/desk/admin/users?status="+url.QueryEscape("user created"), http.StatusSeeOther)
		case errors.Is(err, ErrUsernameRequired),
			errors.Is(err, ErrPasswordRequired),
			errors.Is(err, ErrInvalidRole),
			errors.Is(err, ErrUsernameExists):
			http.Redirect(w, r, "/desk/admin/users?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		default:
			slog.Error("failed to create user", "error", err)
			http.Redirect(w, r, "/desk/admin/users?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		}
	}
}
