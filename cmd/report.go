package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ParkerVR/sith/internal/chart"
	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/output"
	"github.com/ParkerVR/sith/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize tracked time",
	Long: `Report accumulated time per app from the summary file.

By default reports today. Use --range to widen the window, --date for a
single specific day, and --chart to also render a per-app bar chart PNG.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().String("range", "today", "Report range: today, week, or all")
	reportCmd.Flags().String("date", "", "Report a single day (YYYY-MM-DD); overrides --range")
	reportCmd.Flags().String("chart", "", "Write a bar chart PNG for the reported range to this path")
	reportCmd.Flags().String("style", "", "Time display style (HH:MM:SS or compact; default: from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}

	rng, _ := cmd.Flags().GetString("range")
	date, _ := cmd.Flags().GetString("date")
	chartPath, _ := cmd.Flags().GetString("chart")
	style, _ := cmd.Flags().GetString("style")
	if style == "" {
		style = app.cfg.TimeDisplayStyle
	}

	summary, err := app.st.Load()
	if err != nil {
		return fmt.Errorf("load summary: %w", err)
	}

	result, keys, err := buildReport(summary, rng, date, time.Now(), style)
	if err != nil {
		return err
	}

	if chartPath != "" {
		if err := writeRangeChart(summary, keys, result.Range, chartPath); err != nil {
			return err
		}
	}

	return output.Print(result)
}

// buildReport selects the day keys covered by the requested range and
// renders them as a report, newest day first. It also returns the raw
// keys so callers can feed the same selection into the chart renderer.
func buildReport(sum store.Summary, rng, date string, now time.Time, style string) (output.ReportResult, []string, error) {
	var keys []string
	var label string

	switch {
	case date != "":
		if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
			return output.ReportResult{}, nil, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
		}
		keys = []string{date}
		label = date
	case rng == "today":
		keys = []string{format.DayKey(now)}
		label = "today"
	case rng == "week":
		for i := 6; i >= 0; i-- {
			keys = append(keys, format.DayKey(now.AddDate(0, 0, -i)))
		}
		label = "week"
	case rng == "all":
		for k := range sum {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		label = "all"
	default:
		return output.ReportResult{}, nil, fmt.Errorf("invalid --range %q: expected today, week, or all", rng)
	}

	result := output.ReportResult{Range: label}
	var total float64
	// Newest day first in the output.
	for i := len(keys) - 1; i >= 0; i-- {
		day := sum[keys[i]]
		if day == nil {
			continue
		}
		rd := output.ReportDay{
			Date:  keys[i],
			Total: format.Seconds(int(day.Total), style),
		}
		if len(day.ByApp) > 0 {
			rd.ByApp = make(map[string]string, len(day.ByApp))
			for app, sec := range day.ByApp {
				rd.ByApp[app] = format.Seconds(int(sec), style)
			}
		}
		result.Days = append(result.Days, rd)
		total += day.Total
	}
	result.Total = format.Seconds(int(total), style)
	return result, keys, nil
}

// writeRangeChart merges the per-app totals over the selected days and
// renders them as a single bar chart.
func writeRangeChart(sum store.Summary, keys []string, label, path string) error {
	merged := &store.DaySummary{ByApp: map[string]float64{}}
	for _, k := range keys {
		day := sum[k]
		if day == nil {
			continue
		}
		for app, sec := range day.ByApp {
			merged.Add(app, sec)
		}
	}
	entries := chart.Entries(merged)
	title := fmt.Sprintf("sith %s (%s)", label, format.Seconds(int(merged.Total), format.StyleClock))
	return chart.WritePNG(path, chart.Render(title, entries))
}
