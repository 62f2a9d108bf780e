package cmd

import (
	"strings"
	"testing"
)

func TestRenderPlist(t *testing.T) {
	got := renderPlist("com.parkervr.sith", "/usr/local/bin/sith", "/Users/me/Library/LaunchAgents")

	for _, want := range []string{
		"<key>Label</key><string>com.parkervr.sith</string>",
		"<string>/usr/local/bin/sith</string><string>track</string>",
		"<key>RunAtLoad</key><true/>",
		"<key>KeepAlive</key><true/>",
		"/Users/me/Library/LaunchAgents/com.parkervr.sith.out.log",
		"/Users/me/Library/LaunchAgents/com.parkervr.sith.err.log",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("plist missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, `<?xml version="1.0"`) {
		t.Errorf("plist missing XML declaration")
	}
}
