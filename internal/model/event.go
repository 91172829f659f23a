package model

import "time"

// Event types and statuses.
const (
	EventTypeRun        = "run_event"
	EventTypeChallenge  = "challenge"
	EventTypeTournament = "tournament"

	EventStatusUpcoming  = "upcoming"
	EventStatusActive    = "active"
	EventStatusFinished  = "finished"
	EventStatusCancelled = "cancelled"
)

// Event covers runs, challenges and tournaments with a registration window.
type Event struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	EventType            string     `json:"event_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	Status               string     `json:"status"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
}
