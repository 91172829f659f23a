package postgres

import (
	"context"
	"database/sql"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// AdminPostgres is a PostgreSQL implementation of repository.AdminRepository.
type AdminPostgres struct {
	db *sql.DB
}

// NewAdminPostgres creates a new AdminPostgres repository.
func NewAdminPostgres(db *sql.DB) *AdminPostgres {
	return &AdminPostgres{db: db}
}

var _ repository.AdminRepository = (*AdminPostgres)(nil)

const adminColumns = `id, username, full_name, password_hash, added_at, is_active`

func scanAdmin(row interface{ Scan(...any) error }) (*model.Admin, error) {
	var a model.Admin
	var fullName sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&fullName,
		&a.PasswordHash,
		&a.AddedAt,
		&a.IsActive,
	); err != nil {
		return nil, err
	}
	a.FullName = fullName.String
	return &a, nil
}

// FindByUsername fetches an admin account by username.
func (r *AdminPostgres) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	return scanAdmin(r.db.QueryRowContext(ctx, q, username))
}

// Upsert inserts or refreshes the bootstrap admin account.
func (r *AdminPostgres) Upsert(ctx context.Context, a *model.Admin) (*model.Admin, error) {
	const q = `
		INSERT INTO admins (username, full_name, password_hash, added_at, is_active)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		ON CONFLICT (username)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, is_active = EXCLUDED.is_active
		RETURNING ` + adminColumns
	return scanAdmin(r.db.QueryRowContext(ctx, q,
		a.Username,
		a.FullName,
		a.PasswordHash,
		a.AddedAt,
		a.IsActive,
	))
}
