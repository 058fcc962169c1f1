package config

import (
	"os"
	"strings"
	"time"
)

// Settings holds the runtime flags read once at startup. Kept as a package
// global next to DB so controllers can reach it the same way.
type Settings struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration

	// StrictEditChecks turns on the symmetric overlap/ownership checks on
	// the edit path. The original system skipped them there; default off.
	StrictEditChecks bool
}

var Cfg Settings

func LoadSettings() Settings {
	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			ttl = d
		}
	}

	Cfg = Settings{
		Port:             envOrDefault("PORT", "8080"),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:         ttl,
		StrictEditChecks: strings.EqualFold(envOrDefault("STRICT_EDIT_CHECKS", "false"), "true"),
	}
	return Cfg
}
