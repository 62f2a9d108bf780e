//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics -framework Foundation
#import <AppKit/AppKit.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

// Returns the localized name of the frontmost application, or NULL.
// Caller frees.
static char *ns_frontmost_app_name(void) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (app == nil) {
        return NULL;
    }
    NSString *name = [app localizedName];
    if (name == nil) {
        return NULL;
    }
    const char *utf8 = [name UTF8String];
    if (utf8 == NULL) {
        return NULL;
    }
    return strdup(utf8);
}

// Seconds since the last HID input event of any type.
static double cg_idle_seconds(void) {
    return CGEventSourceSecondsSinceLastEventType(
        kCGEventSourceStateHIDSystemState, kCGAnyInputEventType);
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// DarwinWatcher implements the platform.Watcher interface for macOS.
type DarwinWatcher struct{}

// NewWatcher creates a new macOS watcher.
func NewWatcher() *DarwinWatcher {
	return &DarwinWatcher{}
}

func (w *DarwinWatcher) FrontmostApp() (string, error) {
	cName := C.ns_frontmost_app_name()
	if cName == nil {
		return "", fmt.Errorf("failed to query frontmost application")
	}
	defer C.free(unsafe.Pointer(cName))
	return C.GoString(cName), nil
}

func (w *DarwinWatcher) IdleSeconds() (float64, error) {
	return float64(C.cg_idle_seconds()), nil
}
