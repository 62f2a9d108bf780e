package tracker

import (
	"fmt"
	"testing"
	"time"
)

// fakeWatcher scripts the OS responses for poller tests.
type fakeWatcher struct {
	app     string
	appErr  error
	idle    float64
	idleErr error
}

func (f *fakeWatcher) FrontmostApp() (string, error) { return f.app, f.appErr }
func (f *fakeWatcher) IdleSeconds() (float64, error) { return f.idle, f.idleErr }

func TestPollerSample(t *testing.T) {
	now := time.Now()
	p := NewPoller(&fakeWatcher{app: "Code", idle: 1.5})

	s := p.Sample(now)
	if s.App != "Code" || s.IdleSeconds != 1.5 || !s.Time.Equal(now) {
		t.Errorf("Sample = %+v", s)
	}
}

func TestPollerDegradesToSentinelOnAppError(t *testing.T) {
	p := NewPoller(&fakeWatcher{appErr: fmt.Errorf("permission revoked")})
	s := p.Sample(time.Now())
	if !s.Unknown() {
		t.Errorf("expected sentinel sample, got %+v", s)
	}
}

func TestPollerDegradesToSentinelOnIdleError(t *testing.T) {
	p := NewPoller(&fakeWatcher{app: "Code", idleErr: fmt.Errorf("query failed")})
	s := p.Sample(time.Now())
	if !s.Unknown() {
		t.Errorf("expected sentinel sample, got %+v", s)
	}
}

func TestPollerEmptyAppNameIsSentinel(t *testing.T) {
	p := NewPoller(&fakeWatcher{app: ""})
	if s := p.Sample(time.Now()); !s.Unknown() {
		t.Errorf("expected sentinel for empty app name, got %+v", s)
	}
}
