package captcha

import (
	"strings"
	"sync"
	"time"

	"github.com/havenlocal/haven/internal/randx"
)

// textCharset leaves out 0/O, 1/l/I and similar lookalikes.
const textCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

const (
	textLength     = 6
	textRetryDelay = 1500 * time.Millisecond
)

// TextChallenge asks the user to retype a short random code. Comparison is
// case-insensitive. The code regenerates 1.5s after a failed submit, and the
// form may also trigger a manual Refresh.
type TextChallenge struct {
	mu       sync.Mutex
	puzzle   string
	input    string
	verified bool
	failed   bool

	onVerify func(bool)

	// test seams
	after    func(d time.Duration, fn func()) *time.Timer
	generate func() string
}

// NewText returns a TextChallenge with its first puzzle generated.
func NewText(onVerify func(bool)) *TextChallenge {
	c := &TextChallenge{
		onVerify: onVerify,
		after:    time.AfterFunc,
		generate: func() string { return randx.String(textCharset, textLength) },
	}
	c.regenerate()
	return c
}

func (c *TextChallenge) notify(verified bool) {
	if c.onVerify != nil {
		c.onVerify(verified)
	}
}

func (c *TextChallenge) regenerate() {
	c.mu.Lock()
	c.puzzle = c.generate()
	c.input = ""
	c.failed = false
	c.verified = false
	c.mu.Unlock()
	c.notify(false)
}

func (c *TextChallenge) Question() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puzzle
}

func (c *TextChallenge) Input(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.verified {
		return
	}
	c.input = s
	c.failed = false
}

func (c *TextChallenge) Submit() bool {
	c.mu.Lock()
	if c.verified {
		c.mu.Unlock()
		return true
	}

	ok := strings.EqualFold(c.input, c.puzzle)
	if ok {
		c.verified = true
		c.failed = false
	} else {
		c.failed = true
		c.after(textRetryDelay, func() {
			c.mu.Lock()
			verified := c.verified
			c.mu.Unlock()
			if !verified {
				c.regenerate()
			}
		})
	}
	c.mu.Unlock()

	c.notify(ok)
	return ok
}

// Refresh regenerates the code immediately and resets all flags.
func (c *TextChallenge) Refresh() {
	c.regenerate()
}

func (c *TextChallenge) Verified() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verified
}

func (c *TextChallenge) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}
