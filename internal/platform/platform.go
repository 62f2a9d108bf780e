// Package platform abstracts the OS facilities the tracker polls: the name
// of the frontmost application and the user idle time. Backends register
// themselves via NewWatcherFunc from platform-specific packages.
package platform

import (
	"fmt"
	"runtime"
)

// Watcher reads the foreground application and idle time from the OS.
// Both calls are read-only; failures are per-call and transient (a revoked
// permission may be granted back without a restart).
type Watcher interface {
	// FrontmostApp returns the localized name of the active application.
	FrontmostApp() (string, error)

	// IdleSeconds returns seconds since the last user input event.
	IdleSeconds() (float64, error)
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("sith is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewWatcherFunc is set by platform-specific packages via init().
// See internal/platform/darwin for the macOS registration.
var NewWatcherFunc func() (Watcher, error)

// RequestPermissionsFunc is set by platform-specific packages via init().
// It triggers the OS accessibility prompt at startup.
var RequestPermissionsFunc func()

// NewWatcher returns a Watcher for the current OS.
func NewWatcher() (Watcher, error) {
	if NewWatcherFunc == nil {
		return nil, ErrUnsupported
	}
	return NewWatcherFunc()
}
