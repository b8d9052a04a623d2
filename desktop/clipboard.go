package desktop

import (
	"log"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipOnce sync.Once
	clipOK   bool
)

// InitClipboard prepares clipboard access. Paste is a no-op when it fails.
func InitClipboard() {
	clipOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("[desktop] clipboard init: %v", err)
			return
		}
		clipOK = true
	})
}

// PasteText returns the clipboard text flattened to one line.
func PasteText() string {
	if !clipOK {
		return ""
	}
	b := clipboard.Read(clipboard.FmtText)
	if len(b) == 0 {
		return ""
	}
	return SingleLine(string(b))
}

// SingleLine replaces line breaks and tabs with spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(s)), " ")
}
