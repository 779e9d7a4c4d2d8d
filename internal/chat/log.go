// Package chat implements the per-identity conversation log and the scripted
// counselor auto-responder. The log is append-only; each identity's history
// lives under its own key, so one identity's messages can never leak into
// another's.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/models"
)

func messagesKey(ownerID string) string {
	return fmt.Sprintf("messages:%s", ownerID)
}

// Log stores ordered message histories.
type Log struct {
	store kv.Store
}

// NewLog returns a Log persisting through store.
func NewLog(store kv.Store) *Log {
	return &Log{store: store}
}

// History returns ownerID's messages in insertion order, oldest first.
// An identity with no messages yet gets an empty history, not an error.
func (l *Log) History(ctx context.Context, ownerID string) ([]models.Message, error) {
	var msgs []models.Message
	if _, err := kv.GetJSON(ctx, l.store, messagesKey(ownerID), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Append adds m to the end of ownerID's history and persists immediately.
func (l *Log) Append(ctx context.Context, ownerID string, m models.Message) error {
	msgs, err := l.History(ctx, ownerID)
	if err != nil {
		return err
	}
	msgs = append(msgs, m)
	return kv.SetJSON(ctx, l.store, messagesKey(ownerID), msgs)
}

// WelcomeMessage builds the counselor greeting an empty history is seeded
// with. Seeding itself is the consuming page's decision, not the log's.
func WelcomeMessage(ownerID string) models.Message {
	return models.Message{
		ID:            models.NewMessageID(),
		OwnerID:       ownerID,
		Text:          welcomeText,
		Timestamp:     time.Now(),
		FromCounselor: true,
	}
}
