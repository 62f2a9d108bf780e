//go:build darwin

package main

// Links the macOS watcher backend so its init() registration runs.
import _ "github.com/ParkerVR/sith/internal/platform/darwin"
