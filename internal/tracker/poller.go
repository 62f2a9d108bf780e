package tracker

import (
	"time"

	"github.com/ParkerVR/sith/internal/platform"
)

// Poller produces samples from a platform watcher. A failed OS query
// degrades to the sentinel sample instead of an error: the caller skips
// accrual for that tick and keeps polling.
type Poller struct {
	w platform.Watcher
}

// NewPoller wraps a platform watcher.
func NewPoller(w platform.Watcher) *Poller {
	return &Poller{w: w}
}

// Sample polls the OS once at now.
func (p *Poller) Sample(now time.Time) Sample {
	app, err := p.w.FrontmostApp()
	if err != nil || app == "" {
		return Sample{App: UnknownApp, Time: now}
	}
	idle, err := p.w.IdleSeconds()
	if err != nil {
		return Sample{App: UnknownApp, Time: now}
	}
	return Sample{App: app, IdleSeconds: idle, Time: now}
}
