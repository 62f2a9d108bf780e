package tracker

import (
	"reflect"
	"testing"
)

func TestPushRecentDeduplicatesAndFronts(t *testing.T) {
	recent := []string{"Code", "Safari", "Mail"}
	got := PushRecent(recent, "Safari")
	want := []string{"Safari", "Code", "Mail"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PushRecent = %v, want %v", got, want)
	}
}

func TestPushRecentCapsLength(t *testing.T) {
	var recent []string
	for _, app := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		recent = PushRecent(recent, app)
	}
	if len(recent) != maxRecentApps {
		t.Errorf("len = %d, want %d", len(recent), maxRecentApps)
	}
	if recent[0] != "l" {
		t.Errorf("front = %q, want most recent", recent[0])
	}
}

func TestPushRecentIgnoresSentinel(t *testing.T) {
	recent := []string{"Code"}
	if got := PushRecent(recent, UnknownApp); !reflect.DeepEqual(got, recent) {
		t.Errorf("sentinel pushed: %v", got)
	}
	if got := PushRecent(recent, ""); !reflect.DeepEqual(got, recent) {
		t.Errorf("empty pushed: %v", got)
	}
}
