// Package hud is the terminal stand-in for the original floating timer
// window: a live dashboard showing today's tracked time, the foreground
// app, and the ACTIVE/IDLE state.
//
// The dashboard is read-only. It reloads the summary file on every tick
// and samples the OS for display, but never accrues time itself; a
// concurrent `sith track` process owns the summary file.
package hud

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/store"
	"github.com/ParkerVR/sith/internal/tracker"
)

type tickMsg time.Time

// Model is the bubbletea model for `sith dashboard`.
type Model struct {
	cfg    config.Config
	st     *store.Store
	poller *tracker.Poller // nil when the platform has no watcher

	today  *store.DaySummary
	sample tracker.Sample

	width  int
	height int

	timerStyle    lipgloss.Style
	workingStyle  lipgloss.Style
	inactiveStyle lipgloss.Style
	boxStyle      lipgloss.Style
	dimStyle      lipgloss.Style
}

// New builds the dashboard model. poller may be nil; the dashboard then
// shows file totals only.
func New(cfg config.Config, st *store.Store, poller *tracker.Poller) Model {
	working := lipgloss.Color(cfg.Colors.GlassWorking)
	inactive := lipgloss.Color(cfg.Colors.GlassInactive)
	return Model{
		cfg:    cfg,
		st:     st,
		poller: poller,
		sample: tracker.Sample{App: tracker.UnknownApp},

		timerStyle:    lipgloss.NewStyle().Bold(true),
		workingStyle:  lipgloss.NewStyle().Foreground(working).Bold(true),
		inactiveStyle: lipgloss.NewStyle().Foreground(inactive).Bold(true),
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(working).
			Padding(1, 2),
		dimStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

func (m Model) interval() time.Duration {
	d := time.Duration(m.cfg.UpdateInterval) * time.Millisecond
	if d <= 0 {
		d = time.Second
	}
	return d
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m = m.refresh(time.Time(msg))
		return m, m.tickCmd()
	}
	return m, nil
}

// refresh reloads today's totals from disk and takes a display sample.
func (m Model) refresh(now time.Time) Model {
	if sum, err := m.st.Load(); err == nil {
		m.today = sum.Day(format.DayKey(now))
	}
	if m.poller != nil {
		m.sample = m.poller.Sample(now)
	}
	return m
}

// working mirrors the accumulator's accrual condition for display.
func (m Model) working() bool {
	if m.sample.Unknown() {
		return false
	}
	if m.sample.IdleSeconds >= float64(m.cfg.IdleThreshold) {
		return false
	}
	return m.cfg.Allowed(m.sample.App)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var total int
	if m.today != nil {
		total = int(m.today.Total)
	}

	state := "IDLE"
	stateStyle := m.inactiveStyle
	if m.working() {
		state = "ACTIVE"
		stateStyle = m.workingStyle
	}

	timer := m.timerStyle.Render(format.Seconds(total, m.cfg.TimeDisplayStyle))
	header := fmt.Sprintf("%s\n\n%s   %s", timer, m.sample.App, stateStyle.Render(state))

	boxWidth := m.width - 4
	if max := m.cfg.Window.Width / 4; max > 0 && boxWidth > max {
		boxWidth = max
	}

	var sections []string
	sections = append(sections, m.boxStyle.Width(boxWidth).Render(header))

	if m.today != nil && len(m.today.ByApp) > 0 {
		sections = append(sections, m.boxStyle.Width(boxWidth).Render(m.breakdown()))
	}

	footer := m.dimStyle.Render("q to quit")
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// breakdown renders today's per-app rows, most used first.
func (m Model) breakdown() string {
	type row struct {
		app string
		sec float64
	}
	rows := make([]row, 0, len(m.today.ByApp))
	for app, sec := range m.today.ByApp {
		rows = append(rows, row{app, sec})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].sec != rows[j].sec {
			return rows[i].sec > rows[j].sec
		}
		return rows[i].app < rows[j].app
	})

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-20s %8s  %s",
			r.app,
			format.Seconds(int(r.sec), format.StyleClock),
			format.AppBar(int(r.sec), int(m.today.Total), 16))
	}
	return b.String()
}
