package module

import (
	"time"

	"folkarchive/internal/platform/config"
)

// Options controls dashboard report behavior
type Options struct {
	// SourceTimeout bounds each per domain source read
	SourceTimeout time.Duration
}

// FromConfig reads values from the CORE_API_* config view
func FromConfig(cfg config.Conf) Options {
	return Options{
		SourceTimeout: cfg.MayDuration("SOURCE_TIMEOUT", 30*time.Second),
	}
}
