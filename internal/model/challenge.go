package model

import "time"

// Challenge types supported by the bot.
const (
	ChallengeTypeRunning = "running"
	ChallengeTypePushups = "pushups"
	ChallengeTypeSquats  = "squats"
	ChallengeTypePlank   = "plank"
)

// Challenge is a time-bounded fitness challenge participants submit results to.
type Challenge struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ChallengeType string    `json:"challenge_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
