// Package output serializes command results to stdout in the format
// selected by the root --format flag.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is the destination writer; tests may swap it.
var Stdout io.Writer = os.Stdout

// StatusResult is the top-level output of the `status` command.
type StatusResult struct {
	App         string  `yaml:"app"               json:"app"`
	IdleSeconds float64 `yaml:"idle_seconds"      json:"idle_seconds"`
	Working     bool    `yaml:"working"           json:"working"`
	Allowed     bool    `yaml:"allowed"           json:"allowed"`
	Today       string  `yaml:"today"             json:"today"`
	TodayTotal  string  `yaml:"today_total"       json:"today_total"`
	AppToday    string  `yaml:"app_today,omitempty" json:"app_today,omitempty"`
}

// ReportDay is one day of the `report` command output.
type ReportDay struct {
	Date  string            `yaml:"date"  json:"date"`
	Total string            `yaml:"total" json:"total"`
	ByApp map[string]string `yaml:"by_app,omitempty" json:"by_app,omitempty"`
}

// ReportResult is the top-level output of the `report` command.
type ReportResult struct {
	Range string      `yaml:"range" json:"range"`
	Days  []ReportDay `yaml:"days"  json:"days"`
	Total string      `yaml:"total" json:"total"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as JSON, indented when pretty is set.
func PrintJSON(v interface{}, pretty bool) error {
	enc := json.NewEncoder(Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
