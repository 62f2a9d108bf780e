package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

const autostartLabel = "com.parkervr.sith"

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage launch-at-login",
	Long: `Install or remove a per-user LaunchAgent that runs "sith track" at login
and keeps it alive.`,
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Install the LaunchAgent and start tracking at login",
	RunE:  runAutostartEnable,
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Unload and remove the LaunchAgent",
	RunE:  runAutostartDisable,
}

func init() {
	rootCmd.AddCommand(autostartCmd)
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartDisableCmd)
}

// renderPlist produces the LaunchAgent property list for execPath. Logs
// go next to the plist so launchd output is easy to find.
func renderPlist(label, execPath, agentsDir string) string {
	outLog := filepath.Join(agentsDir, label+".out.log")
	errLog := filepath.Join(agentsDir, label+".err.log")
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0"><dict>
  <key>Label</key><string>%s</string>
  <key>ProgramArguments</key><array><string>%s</string><string>track</string></array>
  <key>RunAtLoad</key><true/>
  <key>KeepAlive</key><true/>
  <key>StandardOutPath</key><string>%s</string>
  <key>StandardErrorPath</key><string>%s</string>
</dict></plist>
`, label, execPath, outLog, errLog)
}

func agentPaths() (agentsDir, plistPath, uid string, err error) {
	if runtime.GOOS != "darwin" {
		return "", "", "", fmt.Errorf("autostart is only supported on macOS")
	}
	usr, err := user.Current()
	if err != nil {
		return "", "", "", fmt.Errorf("current user: %w", err)
	}
	agentsDir = filepath.Join(usr.HomeDir, "Library", "LaunchAgents")
	plistPath = filepath.Join(agentsDir, autostartLabel+".plist")
	return agentsDir, plistPath, usr.Uid, nil
}

func runAutostartEnable(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	agentsDir, plistPath, uid, err := agentPaths()
	if err != nil {
		return err
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	if err := os.MkdirAll(agentsDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", agentsDir, err)
	}
	plist := renderPlist(autostartLabel, execPath, agentsDir)
	if err := os.WriteFile(plistPath, []byte(plist), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", plistPath, err)
	}

	// bootstrap is the modern verb; fall back to load -w on older macOS.
	if err := exec.Command("launchctl", "bootstrap", "gui/"+uid, plistPath).Run(); err != nil {
		_ = exec.Command("launchctl", "load", "-w", plistPath).Run()
	}
	_ = exec.Command("launchctl", "enable", "gui/"+uid+"/"+autostartLabel).Run()

	app.log.Info().Str("plist", plistPath).Msg("autostart enabled")
	return nil
}

func runAutostartDisable(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	_, plistPath, uid, err := agentPaths()
	if err != nil {
		return err
	}

	if err := exec.Command("launchctl", "bootout", "gui/"+uid+"/"+autostartLabel).Run(); err != nil {
		_ = exec.Command("launchctl", "unload", "-w", plistPath).Run()
	}
	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", plistPath, err)
	}

	app.log.Info().Str("plist", plistPath).Msg("autostart disabled")
	return nil
}
