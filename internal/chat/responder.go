package chat

import (
	"context"
	"time"

	"github.com/havenlocal/haven/internal/logging"
	"github.com/havenlocal/haven/internal/models"
	"github.com/havenlocal/haven/internal/randx"
)

// Responder schedules the scripted counselor reply that follows each user
// message. Replies are fire-and-forget: one timer per user message, not
// retried, and dropped if the process exits before the timer fires.
type Responder struct {
	log    *Log
	logger logging.Logger
	delay  time.Duration
	jitter time.Duration

	// active reports whether ownerID still owns the current session.
	// A scheduled reply re-checks it right before appending, so a timer
	// that outlives a logout or account switch becomes a no-op.
	active func(ctx context.Context, ownerID string) bool

	// delivered, when set, is called after a reply lands in the log.
	delivered func(m models.Message)

	// test seams
	after func(d time.Duration, fn func()) *time.Timer
	pick  func(items []string) string
}

// NewResponder returns a Responder appending through log. delay is the base
// wait before a reply; up to one extra second of jitter is added. active may
// be nil, in which case replies are always applied.
func NewResponder(log *Log, logger logging.Logger, delay time.Duration, active func(ctx context.Context, ownerID string) bool) *Responder {
	return &Responder{
		log:    log,
		logger: logger,
		delay:  delay,
		jitter: time.Second,
		active: active,
		after:  time.AfterFunc,
		pick:   randx.Pick[string],
	}
}

// OnDelivery registers a callback invoked with every counselor reply after it
// has been appended. It must be set before the first Reply call.
func (r *Responder) OnDelivery(fn func(m models.Message)) {
	r.delivered = fn
}

// Reply schedules exactly one counselor message for ownerID.
func (r *Responder) Reply(ownerID string) {
	wait := r.delay + randx.Jitter(r.jitter)
	r.after(wait, func() {
		// the triggering view may be long gone by now
		ctx := context.Background()

		if r.active != nil && !r.active(ctx, ownerID) {
			r.logger.Debug(ctx, "dropping stale counselor reply", "owner_id", ownerID)
			return
		}

		m := models.Message{
			ID:            models.NewMessageID(),
			OwnerID:       ownerID,
			Text:          r.pick(counselorReplies),
			Timestamp:     time.Now(),
			FromCounselor: true,
		}
		if err := r.log.Append(ctx, ownerID, m); err != nil {
			r.logger.Error(ctx, "failed to append counselor reply", "owner_id", ownerID, "error", err)
			return
		}
		if r.delivered != nil {
			r.delivered(m)
		}
	})
}
