package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return output.Print(app.cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(output.Stdout, config.Path(dir))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a top-level configuration value and write the file back.

Settable keys: idle_threshold, update_interval, time_display_style,
log_level. Allowlist entries are managed with "sith allowlist".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		cfg, err := applyConfigSet(app.cfg, args[0], args[1])
		if err != nil {
			return err
		}
		if err := config.Save(app.dir, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		app.log.Info().Str("key", args[0]).Str("value", args[1]).Msg("config updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}

// applyConfigSet validates key/value and returns the updated config.
func applyConfigSet(cfg config.Config, key, value string) (config.Config, error) {
	switch key {
	case "idle_threshold":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("idle_threshold must be a positive integer, got %q", value)
		}
		cfg.IdleThreshold = n
	case "update_interval":
		n, err := strconv.Atoi(value)
		if err != nil || n < 100 {
			return cfg, fmt.Errorf("update_interval must be at least 100 milliseconds, got %q", value)
		}
		cfg.UpdateInterval = n
	case "time_display_style":
		if value != "HH:MM:SS" && value != "compact" {
			return cfg, fmt.Errorf("time_display_style must be HH:MM:SS or compact, got %q", value)
		}
		cfg.TimeDisplayStyle = value
	case "log_level":
		switch value {
		case "trace", "debug", "info", "warn", "error":
			cfg.LogLevel = value
		default:
			return cfg, fmt.Errorf("log_level must be one of trace, debug, info, warn, error, got %q", value)
		}
	default:
		return cfg, fmt.Errorf("unknown config key %q", key)
	}
	return cfg, nil
}
