package adminusers

import (
	"context"
	"errors"
	"strings"

	"github.com/uptrace/bun"

	"slipdesk/frontend/login"
	"slipdesk/infrastructure/rbac"
	"slipdesk/infrastructure/sqlite"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidRole      = errors.New("role must be admin or staff")
	ErrUsernameExists   = errors.New("username already exists")
)

func LoadUsersPageData(ctx context.Context, db *sqlite.DB) (PageData, error) {
	users := make([]UserView, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw("SELECT id, username, role FROM users ORDER BY id ASC").Scan(ctx, &users)
	})
	return PageData{Users: users}, err
}

func CreateUser(ctx context.Context, db *sqlite.DB, username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if role != rbac.RoleAdmin && role != rbac.RoleStaff {
		return ErrInvalidRole
	}

	var exists bool
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw("SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = ?)",
			strings.ToLower(username)).Scan(ctx, &exists)
	})
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameExists
	}

	return login.UpsertUserPasswordHash(ctx, db, username, role, password)
}
