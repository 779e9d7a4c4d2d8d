package chat

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/logging"
	"github.com/havenlocal/haven/internal/models"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// immediate makes the responder's timer fire synchronously.
func immediate(r *Responder) {
	r.jitter = 0
	r.after = func(_ time.Duration, fn func()) *time.Timer {
		fn()
		return nil
	}
}

func TestReply_AppendsExactlyOneCounselorMessage(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, "u1", userMessage("u1", "I need help")))

	r := NewResponder(l, discardLogger(), 0, nil)
	immediate(r)
	r.pick = func(items []string) string { return items[0] }

	r.Reply("u1")

	msgs, err := l.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].FromCounselor)
	assert.Equal(t, counselorReplies[0], msgs[1].Text)
}

func TestReply_DrawsFromFixedPool(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	r := NewResponder(l, discardLogger(), 0, nil)
	immediate(r)

	for i := 0; i < 10; i++ {
		r.Reply("u1")
	}

	msgs, err := l.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, 10)
	for _, m := range msgs {
		assert.Contains(t, counselorReplies, m.Text)
		assert.True(t, m.FromCounselor)
	}
}

func TestReply_SkippedWhenOwnerNoLongerActive(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())
	ctx := context.Background()

	active := func(_ context.Context, ownerID string) bool { return ownerID == "current" }

	r := NewResponder(l, discardLogger(), 0, active)
	immediate(r)

	r.Reply("stale")
	msgs, err := l.History(ctx, "stale")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	r.Reply("current")
	msgs, err = l.History(ctx, "current")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestReply_NotifiesDelivery(t *testing.T) {
	l := NewLog(kv.NewMemoryStore())

	r := NewResponder(l, discardLogger(), 0, nil)
	immediate(r)

	var got []models.Message
	r.OnDelivery(func(m models.Message) { got = append(got, m) })

	r.Reply("u1")

	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].OwnerID)
	assert.True(t, got[0].FromCounselor)
}
