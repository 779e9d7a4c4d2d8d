package config

import (
	"flag"
	"os"
	"time"

	"github.com/havenlocal/haven/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file
//	-m string   captcha variant: text or math
//	-r int      counselor responder delay in milliseconds
//
// The function filters os.Args to only the flags it knows about, via
// flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.CaptchaVariant, "m", cfg.CaptchaVariant, "captcha variant: text or math")
	responderDelay := fs.Int("r", int(cfg.ResponderDelay.Milliseconds()), "counselor responder delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResponderDelay = time.Duration(*responderDelay) * time.Millisecond
}
