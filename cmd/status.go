package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/output"
	"github.com/ParkerVR/sith/internal/platform"
	"github.com/ParkerVR/sith/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current tracking state",
	Long: `Take a single sample of the frontmost app and idle time, and report it
alongside today's accumulated totals from the summary file.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	watcher, err := platform.NewWatcher()
	if err != nil {
		return err
	}

	now := time.Now()
	sample := tracker.NewPoller(watcher).Sample(now)

	summary, err := app.st.Load()
	if err != nil {
		app.log.Warn().Err(err).Msg("summary unreadable; reporting zero totals")
	}

	today := format.DayKey(now)
	allowed := app.cfg.Allowed(sample.App)
	result := output.StatusResult{
		App:         sample.App,
		IdleSeconds: sample.IdleSeconds,
		Working:     allowed && !sample.Unknown() && sample.IdleSeconds < float64(app.cfg.IdleThreshold),
		Allowed:     allowed,
		Today:       today,
		TodayTotal:  format.Seconds(0, app.cfg.TimeDisplayStyle),
	}
	if day := summary[today]; day != nil {
		result.TodayTotal = format.Seconds(int(day.Total), app.cfg.TimeDisplayStyle)
		if sec, ok := day.ByApp[sample.App]; ok {
			result.AppToday = format.Seconds(int(sec), app.cfg.TimeDisplayStyle)
		}
	}

	return output.Print(result)
}
