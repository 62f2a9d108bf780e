package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/output"
	"github.com/ParkerVR/sith/internal/platform"
	"github.com/ParkerVR/sith/internal/store"
	"github.com/ParkerVR/sith/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sith",
	Short: "Track time spent in allowlisted macOS applications",
	Long: "A menu-bar-style work timer for the terminal: polls the frontmost application\n" +
		"and user idle time, accrues seconds per app per day, and persists daily\n" +
		"summaries to a local JSON file.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (default: ~/.sith)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: from config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

// appContext bundles everything a command needs: effective config, data
// directory, summary store, and logger. Built per invocation rather than
// held in process-wide singletons.
type appContext struct {
	cfg config.Config
	dir string
	st  *store.Store
	log zerolog.Logger
}

// dataDir resolves the data directory from the --data-dir flag or the
// default location, creating it if needed.
func dataDir(cmd *cobra.Command) (string, error) {
	override, _ := cmd.Flags().GetString("data-dir")
	dir, err := config.Dir(override)
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return dir, nil
}

// loadApp resolves the data directory, loads config (falling back to
// defaults on parse failure), opens the summary store, and runs the
// one-time legacy summary migration.
func loadApp(cmd *cobra.Command) (*appContext, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return nil, err
	}

	cfg, cfgErr := config.Load(dir)

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.LogLevel
	}
	log := newLogger(level)

	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("config unreadable; using defaults")
	}

	st := store.New(config.SummaryPath(dir))
	if migrated, err := st.MigrateLegacy(config.LegacySummaryPath()); err != nil {
		log.Warn().Err(err).Msg("legacy summary migration failed")
	} else if migrated {
		log.Info().Str("path", st.Path()).Msg("migrated legacy summary file")
	}

	return &appContext{cfg: cfg, dir: dir, st: st, log: log}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
