package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func capture(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFormat, prevPretty := Stdout, OutputFormat, PrettyOutput
	Stdout, OutputFormat, PrettyOutput = &buf, format, pretty
	defer func() { Stdout, OutputFormat, PrettyOutput = prevOut, prevFormat, prevPretty }()

	if err := Print(v); err != nil {
		t.Fatalf("Print: %v", err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := capture(t, FormatYAML, false, StatusResult{App: "Code", Working: true, Today: "2025-12-01"})

	var back StatusResult
	if err := yaml.Unmarshal([]byte(got), &back); err != nil {
		t.Fatalf("output not valid yaml: %v\n%s", err, got)
	}
	if back.App != "Code" || !back.Working {
		t.Errorf("round trip = %+v", back)
	}
}

func TestPrintJSONCompact(t *testing.T) {
	got := capture(t, FormatJSON, false, ReportResult{Range: "today", Total: "00:00:07"})
	if strings.Count(strings.TrimSpace(got), "\n") != 0 {
		t.Errorf("compact json spans multiple lines:\n%s", got)
	}
	var back ReportResult
	if err := json.Unmarshal([]byte(got), &back); err != nil {
		t.Fatalf("output not valid json: %v", err)
	}
	if back.Total != "00:00:07" {
		t.Errorf("round trip = %+v", back)
	}
}

func TestPrintJSONPretty(t *testing.T) {
	got := capture(t, FormatJSON, true, ReportResult{Range: "today"})
	if !strings.Contains(got, "\n  ") {
		t.Errorf("pretty json not indented:\n%s", got)
	}
}
