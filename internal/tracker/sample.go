package tracker

import "time"

// UnknownApp is the sentinel app name used when the OS query fails, e.g.
// while accessibility permission is revoked. Unknown samples never accrue.
const UnknownApp = "(unknown)"

// Sample is one poll of the foreground application and user idle time.
type Sample struct {
	App         string
	IdleSeconds float64
	Time        time.Time
}

// Unknown reports whether this is the sentinel sample.
func (s Sample) Unknown() bool {
	return s.App == "" || s.App == UnknownApp
}
