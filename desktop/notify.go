// Package desktop wraps the optional OS integrations: notifications,
// clipboard access and Discord rich presence. Every call is best-effort;
// failures are logged and never reach the game loop.
package desktop

import (
	"log"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// Headless reports whether there is no display to show notifications on.
func Headless() bool {
	return runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// Notify shows a desktop notification. Empty bodies are dropped.
func Notify(title, body string) {
	if body == "" || Headless() {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		log.Printf("[desktop] notify: %v", err)
	}
}
