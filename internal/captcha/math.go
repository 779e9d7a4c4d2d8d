package captcha

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/havenlocal/haven/internal/randx"
)

const mathRetryDelay = 2 * time.Second

type mathQuestion struct {
	text   string
	answer int
}

var mathQuestions = []mathQuestion{
	{"What is 5 + 3?", 8},
	{"What is 10 - 4?", 6},
	{"What is 7 + 2?", 9},
	{"What is 12 - 5?", 7},
	{"What is 6 + 4?", 10},
	{"What is 15 - 8?", 7},
	{"What is 9 + 3?", 12},
	{"What is 11 - 6?", 5},
}

// MathChallenge asks one arithmetic word problem from a fixed pool and
// compares the answer numerically. A wrong answer draws a new question after
// two seconds. There is no manual refresh control on this variant.
type MathChallenge struct {
	mu       sync.Mutex
	question mathQuestion
	input    string
	verified bool
	failed   bool

	onVerify func(bool)

	// test seams
	after    func(d time.Duration, fn func()) *time.Timer
	generate func() mathQuestion
}

// NewMath returns a MathChallenge with its first question drawn.
func NewMath(onVerify func(bool)) *MathChallenge {
	c := &MathChallenge{
		onVerify: onVerify,
		after:    time.AfterFunc,
		generate: func() mathQuestion { return randx.Pick(mathQuestions) },
	}
	c.regenerate()
	return c
}

func (c *MathChallenge) notify(verified bool) {
	if c.onVerify != nil {
		c.onVerify(verified)
	}
}

func (c *MathChallenge) regenerate() {
	c.mu.Lock()
	c.question = c.generate()
	c.input = ""
	c.failed = false
	c.verified = false
	c.mu.Unlock()
	c.notify(false)
}

func (c *MathChallenge) Question() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.question.text
}

// Input keeps only the digits of s, mirroring a numeric-only answer field.
func (c *MathChallenge) Input(s string) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.verified {
		return
	}
	c.input = digits
	c.failed = false
}

func (c *MathChallenge) Submit() bool {
	c.mu.Lock()
	if c.verified {
		c.mu.Unlock()
		return true
	}

	answer, err := strconv.Atoi(c.input)
	ok := err == nil && answer == c.question.answer
	if ok {
		c.verified = true
		c.failed = false
	} else {
		c.failed = true
		c.after(mathRetryDelay, func() {
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

// Refresh is a no-op: only the text variant exposes a refresh control.
func (c *MathChallenge) Refresh() {}

func (c *MathChallenge) Verified() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verified
}

func (c *MathChallenge) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}
