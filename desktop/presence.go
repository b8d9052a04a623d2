package desktop

import (
	"fmt"
	"log"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

// Presence publishes the current character to Discord. A zero Presence (no
// app ID) does nothing.
type Presence struct {
	appID string
	ready bool
	start time.Time
	last  string
}

// NewPresence logs in to the local Discord client. An empty appID disables it.
func NewPresence(appID string) *Presence {
	p := &Presence{appID: appID}
	if appID == "" {
		return p
	}
	if err := client.Login(appID); err != nil {
		log.Printf("[desktop] discord rpc login: %v", err)
		return p
	}
	p.ready = true
	p.start = time.Now()
	return p
}

// Detail formats the status line for a character.
func Detail(name string, level int, zone string) string {
	if name == "" {
		return "choosing a character"
	}
	if zone == "" {
		return fmt.Sprintf("%s, level %d", name, level)
	}
	return fmt.Sprintf("%s, level %d in %s", name, level, zone)
}

// Set updates the activity. Repeated identical details are not resent.
func (p *Presence) Set(detail string) {
	if p == nil || !p.ready || detail == p.last {
		return
	}
	p.last = detail
	if err := client.SetActivity(client.Activity{
		State:   "Emberveil",
		Details: detail,
		Timestamps: &client.Timestamps{
			Start: &p.start,
		},
	}); err != nil {
		log.Printf("[desktop] discord rpc activity: %v", err)
	}
}

func (p *Presence) Close() {
	if p == nil || !p.ready {
		return
	}
	client.Logout()
	p.ready = false
}
