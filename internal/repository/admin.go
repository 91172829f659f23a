package repository

import (
	"context"

	"runbot/internal/model"
)

// AdminRepository defines persistence for panel administrator accounts.
type AdminRepository interface {
	// FindByUsername returns the admin with the given username.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Upsert inserts the admin or, when the username already exists,
	// refreshes its password hash and active flag. Used at startup to
	// bootstrap the account from ADMIN_USERNAME/ADMIN_PASSWORD.
	Upsert(ctx context.Context, a *model.Admin) (*model.Admin, error)
}
