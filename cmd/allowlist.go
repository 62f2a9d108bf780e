package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/output"
)

var allowlistCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Manage the set of apps that accrue time",
}

var allowlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List allowlisted apps",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return output.Print(map[string][]string{"allowlist": app.cfg.Allowlist})
	},
}

var allowlistRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently seen apps (allowlisted or not)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return output.Print(map[string][]string{"recent": app.cfg.RecentApps})
	},
}

var allowlistAddCmd = &cobra.Command{
	Use:   "add <app>",
	Short: "Add an app to the allowlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editAllowlist(cmd, args[0], true)
	},
}

var allowlistRemoveCmd = &cobra.Command{
	Use:   "remove <app>",
	Short: "Remove an app from the allowlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editAllowlist(cmd, args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(allowlistCmd)
	allowlistCmd.AddCommand(allowlistListCmd)
	allowlistCmd.AddCommand(allowlistRecentCmd)
	allowlistCmd.AddCommand(allowlistAddCmd)
	allowlistCmd.AddCommand(allowlistRemoveCmd)
}

// editAllowlist adds or removes name, writes the config back, and prints
// the resulting list. Adding an existing entry or removing a missing one
// is a no-op, not an error.
func editAllowlist(cmd *cobra.Command, name string, add bool) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("app name must not be empty")
	}

	cfg := app.cfg
	if add {
		if !cfg.Allowed(name) {
			cfg.Allowlist = append(cfg.Allowlist, name)
		}
	} else {
		kept := cfg.Allowlist[:0]
		for _, a := range cfg.Allowlist {
			if a != name {
				kept = append(kept, a)
			}
		}
		cfg.Allowlist = kept
	}

	if err := config.Save(app.dir, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return output.Print(map[string][]string{"allowlist": cfg.Allowlist})
}
