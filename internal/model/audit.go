package model

import "time"

// Outcomes of a profile submit attempt.
const (
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// ProfileUpdateEvent is the audit record of one profile submit attempt.
// BackendStatus is zero when the request never got an HTTP response.
type ProfileUpdateEvent struct {
	CreatorID     string    `json:"creator_id"`
	Name          string    `json:"name"`
	Tier          string    `json:"tier"`
	Outcome       string    `json:"outcome"`
	BackendStatus int       `json:"backend_status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
