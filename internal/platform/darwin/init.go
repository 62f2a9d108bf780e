//go:build darwin && cgo

package darwin

import "github.com/ParkerVR/sith/internal/platform"

func init() {
	platform.NewWatcherFunc = func() (platform.Watcher, error) {
		return NewWatcher(), nil
	}
	platform.RequestPermissionsFunc = func() {
		if !IsAccessibilityTrusted() {
			RequestAccessibilityPermission()
		}
	}
}
