package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/models"
)

func userMessage(ownerID, text string) models.Message {
	return models.Message{
		ID:        models.NewMessageID(),
		OwnerID:   ownerID,
		Text:      text,
		Timestamp: time.Now(),
	}
}

func TestHistory_EmptyForNewOwner(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())

	msgs, err := l.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, "u1", userMessage("u1", "first")))
	require.NoError(t, l.Append(ctx, "u1", userMessage("u1", "second")))
	require.NoError(t, l.Append(ctx, "u1", userMessage("u1", "third")))

	msgs, err := l.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)
}

func TestAppend_GrowsByExactlyOne(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, "u1", userMessage("u1", "hello")))
	before, err := l.History(ctx, "u1")
	require.NoError(t, err)

	m := userMessage("u1", "again")
	require.NoError(t, l.Append(ctx, "u1", m))

	after, err := l.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, m.ID, after[len(after)-1].ID)
}

func TestAppend_OwnersAreIsolated(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, "a", userMessage("a", "for a")))
	require.NoError(t, l.Append(ctx, "b", userMessage("b", "for b")))
	require.NoError(t, l.Append(ctx, "a", userMessage("a", "more for a")))

	aMsgs, err := l.History(ctx, "a")
	require.NoError(t, err)
	bMsgs, err := l.History(ctx, "b")
	require.NoError(t, err)

	assert.Len(t, aMsgs, 2)
	require.Len(t, bMsgs, 1)
	assert.Equal(t, "for b", bMsgs[0].Text)
}

func TestWelcomeMessage(t *testing.T) {
	m := WelcomeMessage("u1")
	assert.Equal(t, "u1", m.OwnerID)
	assert.True(t, m.FromCounselor)
	assert.NotEmpty(t, m.ID)
	assert.Contains(t, m.Text, "confidential")
}
