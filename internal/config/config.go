package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Colors holds the user-configurable display colors. The tracker itself is
// color-agnostic; these feed the dashboard and are preserved round-trip so
// the config file stays compatible with earlier releases.
type Colors struct {
	Working       string `json:"working" mapstructure:"working" yaml:"working"`
	Inactive      string `json:"inactive" mapstructure:"inactive" yaml:"inactive"`
	Text          string `json:"text" mapstructure:"text" yaml:"text"`
	GlassWorking  string `json:"glass_working" mapstructure:"glass_working" yaml:"glass_working"`
	GlassInactive string `json:"glass_inactive" mapstructure:"glass_inactive" yaml:"glass_inactive"`
}

// Window holds HUD window geometry preferences. Preserved as data for
// config-file compatibility; the terminal dashboard only uses Width.
type Window struct {
	Opacity float64 `json:"opacity" mapstructure:"opacity" yaml:"opacity"`
	Width   int     `json:"width" mapstructure:"width" yaml:"width"`
	Height  int     `json:"height" mapstructure:"height" yaml:"height"`
	MarginX int     `json:"margin_x" mapstructure:"margin_x" yaml:"margin_x"`
	MarginY int     `json:"margin_y" mapstructure:"margin_y" yaml:"margin_y"`
}

// Config is the startup configuration. It is read once; edits via
// `sith config set` take effect on the next start.
type Config struct {
	Allowlist        []string `json:"allowlist" mapstructure:"allowlist" yaml:"allowlist"`
	IdleThreshold    int      `json:"idle_threshold" mapstructure:"idle_threshold" yaml:"idle_threshold"`
	UpdateInterval   int      `json:"update_interval" mapstructure:"update_interval" yaml:"update_interval"`
	TimeDisplayStyle string   `json:"time_display_style" mapstructure:"time_display_style" yaml:"time_display_style"`
	Colors           Colors   `json:"colors" mapstructure:"colors" yaml:"colors"`
	Window           Window   `json:"window" mapstructure:"window" yaml:"window"`
	RecentApps       []string `json:"recent_apps" mapstructure:"recent_apps" yaml:"recent_apps"`
	LogLevel         string   `json:"log_level" mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration, matching the documented
// config file defaults.
func Default() Config {
	return Config{
		Allowlist:        []string{"Firefox", "Code", "Safari"},
		IdleThreshold:    2,
		UpdateInterval:   1000,
		TimeDisplayStyle: "HH:MM:SS",
		Colors: Colors{
			Working:       "#0077ff",
			Inactive:      "#aa0000",
			Text:          "#ffffff",
			GlassWorking:  "#00d4ff",
			GlassInactive: "#ffffff",
		},
		Window: Window{
			Opacity: 0.9,
			Width:   260,
			Height:  80,
			MarginX: 20,
			MarginY: 60,
		},
		LogLevel: "info",
	}
}

// Load reads the config file from dir, merging it over the defaults.
// A missing file is created with the defaults; an unreadable or invalid
// file falls back to the defaults with a non-nil error for logging.
func Load(dir string) (Config, error) {
	path := Path(dir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := Save(dir, Default()); werr != nil {
			return Default(), fmt.Errorf("write default config: %w", werr)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("allowlist", def.Allowlist)
	v.SetDefault("idle_threshold", def.IdleThreshold)
	v.SetDefault("update_interval", def.UpdateInterval)
	v.SetDefault("time_display_style", def.TimeDisplayStyle)
	v.SetDefault("colors.working", def.Colors.Working)
	v.SetDefault("colors.inactive", def.Colors.Inactive)
	v.SetDefault("colors.text", def.Colors.Text)
	v.SetDefault("colors.glass_working", def.Colors.GlassWorking)
	v.SetDefault("colors.glass_inactive", def.Colors.GlassInactive)
	v.SetDefault("window.opacity", def.Window.Opacity)
	v.SetDefault("window.width", def.Window.Width)
	v.SetDefault("window.height", def.Window.Height)
	v.SetDefault("window.margin_x", def.Window.MarginX)
	v.SetDefault("window.margin_y", def.Window.MarginY)
	v.SetDefault("recent_apps", []string{})
	v.SetDefault("log_level", def.LogLevel)
}

// Save writes cfg to the config file in dir as indented JSON.
func Save(dir string, cfg Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(Path(dir), append(b, '\n'), 0o644)
}

// Allowed reports whether app is eligible for time accrual.
func (c Config) Allowed(app string) bool {
	for _, a := range c.Allowlist {
		if a == app {
			return true
		}
	}
	return false
}
