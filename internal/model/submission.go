package model

import "time"

// Submission moderation statuses.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Submission is one participant result for a challenge, optionally with an
// attached media file. MediaKey holds the storage key returned by the
// storage manager; an empty key means no media is attached.
type Submission struct {
	ID               int64     `json:"id"`
	ParticipantID    int64     `json:"participant_id"`
	ChallengeID      int64     `json:"challenge_id"`
	SubmissionDate   time.Time `json:"submission_date"`
	MediaKey         string    `json:"media_key,omitempty"`
	MediaSizeBytes   int64     `json:"media_size_bytes,omitempty"`
	ResultValue      float64   `json:"result_value,omitempty"`
	ResultUnit       string    `json:"result_unit,omitempty"`
	Comment          string    `json:"comment,omitempty"`
	Status           string    `json:"status"`
	ModeratorComment string    `json:"moderator_comment,omitempty"`
}
