package model

import "time"

// Participant is a registered runner.
// Pure domain model: no database tags, usable across layers.
type Participant struct {
	ID               int64     `json:"id"`
	TelegramID       string    `json:"telegram_id"`
	FullName         string    `json:"full_name"`
	BirthDate        time.Time `json:"birth_date"`
	Phone            string    `json:"phone"`
	DistanceType     string    `json:"distance_type,omitempty"`
	StartNumber      string    `json:"start_number"`
	RegistrationDate time.Time `json:"registration_date"`
	IsActive         bool      `json:"is_active"`
}
