package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/hud"
	"github.com/ParkerVR/sith/internal/platform"
	"github.com/ParkerVR/sith/internal/tracker"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a live terminal dashboard",
	Long: `Display today's timer, the frontmost app, and the per-app breakdown in a
full-screen terminal view that refreshes on the configured interval.

The dashboard is read-only: it reloads the summary file written by a
running "sith track" process and never accrues time itself.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	// The dashboard still works without a watcher (e.g. over SSH); it
	// just cannot show the live frontmost app.
	var poller *tracker.Poller
	if watcher, err := platform.NewWatcher(); err == nil {
		poller = tracker.NewPoller(watcher)
	} else {
		app.log.Warn().Err(err).Msg("no platform watcher; dashboard shows stored totals only")
	}

	p := tea.NewProgram(hud.New(app.cfg, app.st, poller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
