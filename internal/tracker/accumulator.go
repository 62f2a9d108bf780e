// Package tracker decides, tick by tick, whether foreground time accrues to
// the current day's per-app totals. It runs on a single goroutine alongside
// the poll loop; no locking is needed.
package tracker

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/store"
)

// Accumulator applies poll samples to the in-memory summary and flushes it
// through the store on day rollover and on demand.
type Accumulator struct {
	cfg     config.Config
	st      *store.Store
	summary store.Summary

	today    string
	prevTick time.Time
	worked   float64 // session seconds, reset via ResetSession

	// maxStep caps the interval credited for a single tick so time spent
	// asleep (lid closed, process suspended) is not accrued on wake.
	maxStep time.Duration

	log zerolog.Logger
}

// New returns an accumulator over a previously loaded summary. now anchors
// the initial calendar day.
func New(cfg config.Config, st *store.Store, summary store.Summary, now time.Time, log zerolog.Logger) *Accumulator {
	if summary == nil {
		summary = store.Summary{}
	}
	interval := time.Duration(cfg.UpdateInterval) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	maxStep := 2 * interval
	if maxStep < 2*time.Second {
		maxStep = 2 * time.Second
	}
	return &Accumulator{
		cfg:     cfg,
		st:      st,
		summary: summary,
		today:   format.DayKey(now),
		maxStep: maxStep,
		log:     log,
	}
}

// Working reports whether a sample counts as active work: the app is
// allowlisted and the user is below the idle threshold.
func (a *Accumulator) Working(s Sample) bool {
	if s.Unknown() {
		return false
	}
	if s.IdleSeconds >= float64(a.cfg.IdleThreshold) {
		return false
	}
	return a.cfg.Allowed(s.App)
}

// Apply processes one sample. When the sample counts as work, the elapsed
// interval since the previous tick is credited to the sample's app for the
// current day. Returns the app's running total for the day and whether any
// time accrued this tick.
//
// A sample dated a new calendar day first flushes the summary (with the
// prior day's totals unchanged) and then starts accruing into the new day.
func (a *Accumulator) Apply(s Sample) (float64, bool) {
	key := format.DayKey(s.Time)
	if key != a.today {
		if err := a.Flush(); err != nil {
			a.log.Warn().Err(err).Msg("summary flush on day rollover failed; continuing in memory")
		}
		a.log.Info().Str("from", a.today).Str("to", key).Msg("day rollover")
		a.today = key
	}

	elapsed := a.tickInterval(s.Time)
	a.prevTick = s.Time

	if elapsed <= 0 || !a.Working(s) {
		if day, ok := a.summary[a.today]; ok && day != nil {
			return day.ByApp[s.App], false
		}
		return 0, false
	}

	sec := elapsed.Seconds()
	day := a.summary.Day(a.today)
	day.Add(s.App, sec)
	a.worked += sec
	return day.ByApp[s.App], true
}

// tickInterval returns the credited duration for a tick at now. The first
// tick has no predecessor and credits nothing.
func (a *Accumulator) tickInterval(now time.Time) time.Duration {
	if a.prevTick.IsZero() {
		return 0
	}
	d := now.Sub(a.prevTick)
	if d < 0 {
		return 0
	}
	if d > a.maxStep {
		return a.maxStep
	}
	return d
}

// Flush writes the full summary through the store.
func (a *Accumulator) Flush() error {
	return a.st.Save(a.summary)
}

// Today returns the current day key.
func (a *Accumulator) Today() string { return a.today }

// TodaySummary returns the current day's summary, which may be empty.
func (a *Accumulator) TodaySummary() *store.DaySummary {
	return a.summary.Day(a.today)
}

// Summary returns the live summary map.
func (a *Accumulator) Summary() store.Summary { return a.summary }

// WorkedSeconds returns seconds accrued since start or the last reset.
func (a *Accumulator) WorkedSeconds() float64 { return a.worked }

// ResetSession zeroes the session counter. Day totals are unaffected.
func (a *Accumulator) ResetSession() { a.worked = 0 }
