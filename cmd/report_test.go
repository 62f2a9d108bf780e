package cmd

import (
	"testing"
	"time"

	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/store"
)

// reportNow is a fixed Monday so week-range tests are deterministic.
var reportNow = time.Date(2025, 12, 1, 15, 0, 0, 0, time.Local)

func reportSummary() store.Summary {
	return store.Summary{
		"2025-12-01": {Total: 3661, ByApp: map[string]float64{"Code": 3600, "Safari": 61}},
		"2025-11-30": {Total: 120, ByApp: map[string]float64{"Firefox": 120}},
		"2025-11-20": {Total: 40, ByApp: map[string]float64{"Code": 40}},
	}
}

func TestBuildReport_Today(t *testing.T) {
	res, keys, err := buildReport(reportSummary(), "today", "", reportNow, format.StyleClock)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(keys) != 1 || keys[0] != "2025-12-01" {
		t.Fatalf("keys = %v, want [2025-12-01]", keys)
	}
	if len(res.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(res.Days))
	}
	if res.Days[0].Total != "01:01:01" {
		t.Errorf("today total = %q, want 01:01:01", res.Days[0].Total)
	}
	if res.Days[0].ByApp["Code"] != "01:00:00" {
		t.Errorf("Code total = %q, want 01:00:00", res.Days[0].ByApp["Code"])
	}
	if res.Total != "01:01:01" {
		t.Errorf("range total = %q, want 01:01:01", res.Total)
	}
}

func TestBuildReport_WeekSkipsEmptyDaysAndSumsTotal(t *testing.T) {
	res, keys, err := buildReport(reportSummary(), "week", "", reportNow, format.StyleClock)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(keys) != 7 {
		t.Fatalf("got %d keys, want 7", len(keys))
	}
	// Only Nov 30 and Dec 1 fall in the window; Nov 20 does not.
	if len(res.Days) != 2 {
		t.Fatalf("got %d days, want 2: %+v", len(res.Days), res.Days)
	}
	if res.Days[0].Date != "2025-12-01" || res.Days[1].Date != "2025-11-30" {
		t.Errorf("day order = %s, %s; want newest first", res.Days[0].Date, res.Days[1].Date)
	}
	if res.Total != "01:03:01" {
		t.Errorf("range total = %q, want 01:03:01", res.Total)
	}
}

func TestBuildReport_AllOrderedNewestFirst(t *testing.T) {
	res, _, err := buildReport(reportSummary(), "all", "", reportNow, format.StyleClock)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(res.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(res.Days))
	}
	want := []string{"2025-12-01", "2025-11-30", "2025-11-20"}
	for i, w := range want {
		if res.Days[i].Date != w {
			t.Errorf("day[%d] = %s, want %s", i, res.Days[i].Date, w)
		}
	}
}

func TestBuildReport_ExplicitDateOverridesRange(t *testing.T) {
	res, keys, err := buildReport(reportSummary(), "all", "2025-11-30", reportNow, format.StyleClock)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(keys) != 1 || keys[0] != "2025-11-30" {
		t.Fatalf("keys = %v, want [2025-11-30]", keys)
	}
	if res.Range != "2025-11-30" {
		t.Errorf("range label = %q, want the date", res.Range)
	}
	if res.Total != "00:02:00" {
		t.Errorf("total = %q, want 00:02:00", res.Total)
	}
}

func TestBuildReport_EmptyDayYieldsZeroTotal(t *testing.T) {
	res, _, err := buildReport(store.Summary{}, "today", "", reportNow, format.StyleClock)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(res.Days) != 0 {
		t.Errorf("got %d days, want 0", len(res.Days))
	}
	if res.Total != "00:00:00" {
		t.Errorf("total = %q, want 00:00:00", res.Total)
	}
}

func TestBuildReport_InvalidInputs(t *testing.T) {
	if _, _, err := buildReport(reportSummary(), "month", "", reportNow, format.StyleClock); err == nil {
		t.Error("expected error for unknown range")
	}
	if _, _, err := buildReport(reportSummary(), "today", "12/01/2025", reportNow, format.StyleClock); err == nil {
		t.Error("expected error for malformed date")
	}
}
