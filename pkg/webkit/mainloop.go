package webkit

import (
	"runtime"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

var isInitialized bool

// InitMainThread locks the current goroutine to the OS thread for GTK
// operations. This must be called before any GTK operations.
func InitMainThread() {
	if !isInitialized {
		runtime.LockOSThread()
		isInitialized = true
	}
}

// RunOnMainThread schedules fn on the GTK main loop. Safe to call from
// any goroutine; GTK widgets may only be touched on the main thread.
func RunOnMainThread(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false // Remove the idle handler after execution
	})
}
