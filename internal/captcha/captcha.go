// Package captcha implements the human-verification widget the registration
// and login forms show before accepting a submission. Two variants share one
// contract: a distorted-text code and a math word problem. The widget owns
// its retry behavior (a failed submit produces a fresh puzzle after a short
// delay) and reports verification through a boolean callback.
package captcha

// Variant selects which challenge implementation a form shows.
type Variant string

const (
	VariantText Variant = "text"
	VariantMath Variant = "math"
)

// Challenge is the verification state machine shared by both variants.
//
// Once Verified reports true it stays true until the enclosing form discards
// the challenge; further Input and Submit calls cannot revoke it.
type Challenge interface {
	// Question returns the current puzzle text.
	Question() string

	// Input records the user's current answer. Editing clears the failed
	// flag; input is ignored once the challenge is verified.
	Input(s string)

	// Submit compares the recorded input against the expected answer,
	// notifies the verification callback, and reports the outcome. After a
	// mismatch the challenge regenerates itself automatically.
	Submit() bool

	// Refresh regenerates the puzzle immediately where the variant offers a
	// manual refresh control; otherwise it does nothing.
	Refresh()

	Verified() bool
	Failed() bool
}

// New builds the challenge for the given variant. onVerify may be nil; it is
// invoked with true on successful verification and with false on failure and
// on every regeneration. Unknown variants fall back to the text challenge.
func New(v Variant, onVerify func(verified bool)) Challenge {
	switch v {
	case VariantMath:
		return NewMath(onVerify)
	default:
		return NewText(onVerify)
	}
}
