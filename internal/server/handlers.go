package server

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/output"
	"github.com/ParkerVR/sith/internal/store"
	"github.com/ParkerVR/sith/internal/tracker"
)

// toYAMLResult serializes v to YAML for an MCP text response.
func toYAMLResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func (s *Server) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := s.now()
	sample := tracker.Sample{App: tracker.UnknownApp, Time: now}
	if s.poller != nil {
		sample = s.poller.Sample(now)
	}

	sum, err := s.st.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	today := format.DayKey(now)
	day := sum.Day(today)

	allowed := s.cfg.Allowed(sample.App)
	working := allowed && !sample.Unknown() && sample.IdleSeconds < float64(s.cfg.IdleThreshold)

	res := output.StatusResult{
		App:         sample.App,
		IdleSeconds: sample.IdleSeconds,
		Working:     working,
		Allowed:     allowed,
		Today:       today,
		TodayTotal:  format.Seconds(int(day.Total), format.StyleClock),
	}
	if sec, ok := day.ByApp[sample.App]; ok {
		res.AppToday = format.Seconds(int(sec), format.StyleClock)
	}
	return toYAMLResult(res), nil
}

func (s *Server) handleSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	date := stringParam(params, "date", "")
	all := boolParam(params, "all", false)

	sum, err := s.st.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var days []output.ReportDay
	if all {
		keys := make([]string, 0, len(sum))
		for k := range sum {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		for _, k := range keys {
			days = append(days, reportDay(k, sum))
		}
	} else {
		if date == "" {
			date = format.DayKey(s.now())
		}
		days = append(days, reportDay(date, sum))
	}
	return toYAMLResult(days), nil
}

// reportDay formats one day of the summary; missing days render as zero.
func reportDay(key string, sum store.Summary) output.ReportDay {
	rd := output.ReportDay{Date: key, Total: format.Seconds(0, format.StyleClock)}
	day, ok := sum[key]
	if !ok || day == nil {
		return rd
	}
	rd.Total = format.Seconds(int(day.Total), format.StyleClock)
	if len(day.ByApp) > 0 {
		rd.ByApp = make(map[string]string, len(day.ByApp))
		for app, sec := range day.ByApp {
			rd.ByApp[app] = format.Seconds(int(sec), format.StyleClock)
		}
	}
	return rd
}

func (s *Server) handleAllowlist(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	action := stringParam(params, "action", "get")
	app := stringParam(params, "app", "")

	// Re-read the file so edits compose with concurrent `sith config` runs.
	cfg, err := config.Load(s.dataDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch action {
	case "get":
	case "add":
		if app == "" {
			return mcp.NewToolResultError("add requires an app name"), nil
		}
		if !cfg.Allowed(app) {
			cfg.Allowlist = append(cfg.Allowlist, app)
			if err := config.Save(s.dataDir, cfg); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
	case "remove":
		if app == "" {
			return mcp.NewToolResultError("remove requires an app name"), nil
		}
		kept := cfg.Allowlist[:0]
		for _, a := range cfg.Allowlist {
			if a != app {
				kept = append(kept, a)
			}
		}
		cfg.Allowlist = kept
		if err := config.Save(s.dataDir, cfg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s (use get, add, or remove)", action)), nil
	}

	s.cfg = cfg
	return toYAMLResult(map[string]interface{}{"allowlist": cfg.Allowlist}), nil
}

func (s *Server) handleConfigGet(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toYAMLResult(s.cfg), nil
}
