package models

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Message is one entry in an identity's conversation log. Messages are
// append-only: once written they are never edited or removed.
type Message struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Text          string    `json:"text"`
	Timestamp     time.Time `json:"timestamp"`
	FromCounselor bool      `json:"from_counselor"`
}

// NewMessageID returns a creation-time-derived id. ULIDs sort
// lexicographically by creation time, which keeps ids roughly monotonic
// within a log.
func NewMessageID() string {
	return ulid.Make().String()
}
