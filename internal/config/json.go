package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/havenlocal/haven/internal/flagx"
	"github.com/havenlocal/haven/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify delays either as strings like
// "1.5s" or as integer nanoseconds.
type JSONConfig struct {
	DatabasePath   string         `json:"database_path"`
	CaptchaVariant string         `json:"captcha_variant"`
	ResponderDelay timex.Duration `json:"responder_delay"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. With no such flag the function returns without touching
// cfg. Read or unmarshal errors panic; the caller owns recovery.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CaptchaVariant != "" {
		cfg.CaptchaVariant = jc.CaptchaVariant
	}
	if jc.ResponderDelay.Duration != 0 {
		cfg.ResponderDelay = time.Duration(jc.ResponderDelay.Duration)
	}
}
