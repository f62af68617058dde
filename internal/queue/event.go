// Package queue defines the audit messages exchanged over the broker and
// the consumer that records them.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/iliyamo/iavo-ui/internal/model"
)

// ProfileUpdateQueue carries one message per profile submit attempt.
const ProfileUpdateQueue = "profile.update.submitted"

// EncodeEvent serializes an audit event as the message body.
func EncodeEvent(ev model.ProfileUpdateEvent) ([]byte, error) {
	return json.Marshal(ev)
}

// DecodeEvent parses a message body. Events without a creator or outcome
// are rejected.
func DecodeEvent(body []byte) (model.ProfileUpdateEvent, error) {
	var ev model.ProfileUpdateEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("unmarshal: %w", err)
	}
	if ev.CreatorID == "" || ev.Outcome == "" {
		return ev, fmt.Errorf("incomplete event: creator_id=%q outcome=%q", ev.CreatorID, ev.Outcome)
	}
	return ev, nil
}
