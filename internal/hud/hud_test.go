package hud

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ParkerVR/sith/internal/config"
	"github.com/ParkerVR/sith/internal/store"
	"github.com/ParkerVR/sith/internal/tracker"
)

func testModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "summary.json"))
	cfg := config.Default()
	cfg.Allowlist = []string{"Code"}
	return New(cfg, st, nil), st
}

func TestQuitKeys(t *testing.T) {
	m, _ := testModel(t)
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q did not quit", key)
		}
	}
}

func TestTickReloadsSummary(t *testing.T) {
	m, st := testModel(t)

	now := time.Date(2025, time.December, 1, 10, 0, 0, 0, time.Local)
	sum := store.Summary{}
	sum.Day("2025-12-01").Add("Code", 90)
	if err := st.Save(sum); err != nil {
		t.Fatal(err)
	}

	next, cmd := m.Update(tickMsg(now))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	m = next.(Model)
	if m.today == nil || m.today.Total != 90 {
		t.Errorf("today not reloaded: %+v", m.today)
	}
}

func TestViewShowsTimerAndState(t *testing.T) {
	m, st := testModel(t)

	now := time.Now()
	sum := store.Summary{}
	sum.Day(now.Format("2006-01-02")).Add("Code", 3661)
	if err := st.Save(sum); err != nil {
		t.Fatal(err)
	}

	m.width, m.height = 80, 24
	m = m.refresh(now)

	view := m.View()
	if !strings.Contains(view, "01:01:01") {
		t.Errorf("view missing timer readout:\n%s", view)
	}
	if !strings.Contains(view, "IDLE") {
		t.Errorf("view missing state (no poller means idle):\n%s", view)
	}
	if !strings.Contains(view, "Code") {
		t.Errorf("view missing per-app breakdown:\n%s", view)
	}
}

func TestViewBeforeSize(t *testing.T) {
	m, _ := testModel(t)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before size = %q", got)
	}
}

func TestWorkingRequiresAllowlistAndActivity(t *testing.T) {
	m, _ := testModel(t)

	m.sample = tracker.Sample{App: "Code", IdleSeconds: 0}
	if !m.working() {
		t.Error("allowlisted active app should be working")
	}
	m.sample = tracker.Sample{App: "Code", IdleSeconds: float64(m.cfg.IdleThreshold)}
	if m.working() {
		t.Error("idle at threshold should not be working")
	}
	m.sample = tracker.Sample{App: "Browser", IdleSeconds: 0}
	if m.working() {
		t.Error("non-allowlisted app should not be working")
	}
	m.sample = tracker.Sample{App: tracker.UnknownApp}
	if m.working() {
		t.Error("sentinel sample should not be working")
	}
}
