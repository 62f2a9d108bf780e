package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/platform"
	"github.com/ParkerVR/sith/internal/server"
	"github.com/ParkerVR/sith/internal/tracker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Expose tracking status, daily summaries, and allowlist management as MCP
tools over stdio or streamable HTTP, for use by MCP-capable clients.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8307, "Port for the streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	// Status sampling is optional; summary and allowlist tools still
	// work when no watcher is available.
	var poller *tracker.Poller
	if watcher, err := platform.NewWatcher(); err == nil {
		poller = tracker.NewPoller(watcher)
	} else {
		app.log.Warn().Err(err).Msg("no platform watcher; status tool reports unknown app")
	}

	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	app.log.Info().Str("transport", transport).Msg("mcp server starting")
	srv := server.New(app.cfg, app.dir, app.st, poller)
	return srv.Serve(server.Config{
		Transport: transport,
		Port:      port,
		DataDir:   app.dir,
	})
}
