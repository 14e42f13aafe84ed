package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateOnlyFormat is the wire format for calendar dates (export files, JSON
// date-only fields).
const DateOnlyFormat = "2006-01-02"

// ParseDuration parses a duration string, returning a default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatDate renders a nullable date as YYYY-MM-DD, or "" when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateOnlyFormat)
}
