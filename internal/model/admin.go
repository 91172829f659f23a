package model

import "time"

// Admin is a panel administrator account. PasswordHash is a bcrypt hash and
// is never serialized.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	AddedAt      time.Time `json:"added_at"`
	IsActive     bool      `json:"is_active"`
}
