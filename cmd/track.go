package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/platform"
	"github.com/ParkerVR/sith/internal/tracker"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run the tracking loop",
	Long: `Poll the frontmost application and user idle time on a fixed interval,
accruing seconds to allowlisted apps for the current calendar day.

The summary file is flushed on a debounce interval, on day rollover, and
synchronously on SIGINT/SIGTERM. If the OS query fails (e.g. accessibility
permission revoked), ticks degrade to "(unknown)" samples and accrual is
suspended until the query succeeds again; no restart is needed.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default: from config)")
	trackCmd.Flags().Int("duration", 0, "Max seconds to track (0 = until signal)")
	trackCmd.Flags().Int("flush-every", 30, "Seconds between summary flushes")
}

func runTrack(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	watcher, err := platform.NewWatcher()
	if err != nil {
		return err
	}

	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	flushSec, _ := cmd.Flags().GetInt("flush-every")

	cfg := app.cfg
	if intervalMs > 0 {
		cfg.UpdateInterval = intervalMs
	}
	interval := time.Duration(cfg.UpdateInterval) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	if flushSec <= 0 {
		flushSec = 30
	}

	summary, err := app.st.Load()
	if err != nil {
		app.log.Warn().Err(err).Msg("summary unreadable; starting empty for today")
	}

	now := time.Now()
	poller := tracker.NewPoller(watcher)
	acc := tracker.New(cfg, app.st, summary, now, app.log)

	app.log.Info().
		Strs("allowlist", cfg.Allowlist).
		Int("idle_threshold", cfg.IdleThreshold).
		Dur("interval", interval).
		Msg("tracking started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	// SIGUSR1 resets the session counter without touching stored totals.
	reset := make(chan os.Signal, 1)
	signal.Notify(reset, syscall.SIGUSR1)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if durationSec > 0 {
		deadline = time.After(time.Duration(durationSec) * time.Second)
	}

	lastFlush := now
	recent := cfg.RecentApps
	var lastApp string

	// Polling, accumulation, and flushing all run on this goroutine.
	for {
		select {
		case <-sig:
			app.log.Info().
				Str("session", format.Seconds(int(acc.WorkedSeconds()), format.StyleClock)).
				Msg("signal received; flushing summary")
			return finalFlush(app, acc, recent)
		case <-reset:
			app.log.Info().
				Str("session", format.Seconds(int(acc.WorkedSeconds()), format.StyleClock)).
				Msg("session counter reset")
			acc.ResetSession()
		case <-deadline:
			app.log.Info().Msg("duration reached; flushing summary")
			return finalFlush(app, acc, recent)
		case t := <-ticker.C:
			s := poller.Sample(t)
			total, accrued := acc.Apply(s)

			if !s.Unknown() && s.App != lastApp {
				lastApp = s.App
				recent = tracker.PushRecent(recent, s.App)
			}

			if accrued {
				app.log.Debug().
					Str("app", s.App).
					Str("total", format.Seconds(int(total), format.StyleClock)).
					Msg("accrued")
			}

			if t.Sub(lastFlush) >= time.Duration(flushSec)*time.Second {
				if err := acc.Flush(); err != nil {
					app.log.Warn().Err(err).Msg("summary flush failed; continuing in memory")
				}
				lastFlush = t
			}
		}
	}
}

// finalFlush persists the summary and the recent-apps list before exit.
// Persistence failures are logged, not fatal: the process still exits
// cleanly.
func finalFlush(app *appContext, acc *tracker.Accumulator, recent []string) error {
	if err := acc.Flush(); err != nil {
		app.log.Error().Err(err).Msg("final summary flush failed")
	}

	cfg, err := config.Load(app.dir)
	if err == nil {
		cfg.RecentApps = recent
		if err := config.Save(app.dir, cfg); err != nil {
			app.log.Warn().Err(err).Msg("saving recent apps failed")
		}
	}
	return nil
}
