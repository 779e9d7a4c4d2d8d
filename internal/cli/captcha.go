package cli

import (
	"context"
	"os"

	"github.com/havenlocal/haven/internal/captcha"
)

// verifyHuman is the captcha gate used by the auth commands; tests can
// substitute it to skip the interactive challenge.
var verifyHuman = (*App).runCaptcha

// runCaptcha walks the user through the configured verification widget and
// reports whether it ended verified. An empty answer cancels.
//
// The challenge pushes every verification callback into a channel. After a
// failed submit exactly two notifications arrive: the immediate failure, then
// the delayed regeneration. Waiting for the second one keeps the prompt in
// step with the fresh puzzle.
func (a *App) runCaptcha(ctx context.Context) bool {
	events := make(chan bool, 4)
	ch := captcha.New(captcha.Variant(a.config.CaptchaVariant), func(verified bool) {
		select {
		case events <- verified:
		default:
		}
	})
	<-events // initial puzzle generation

	for {
		answer, err := getSimpleText(a.reader, "Verification: "+ch.Question(), os.Stdout)
		if err != nil || answer == "" {
			return false
		}

		ch.Input(answer)
		if ch.Submit() {
			printlnFn("Verified.")
			return true
		}

		printlnFn("Incorrect answer. A new challenge is coming up...")
		<-events // the failure notification
		select {
		case <-events: // the regeneration notification
		case <-ctx.Done():
			return false
		}
	}
}
