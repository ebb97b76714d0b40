package publishers

import (
	"time"

	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
)

// Event represents the payload published downstream.
type Event struct {
	Manager    string    `json:"manager"`
	Action     string    `json:"action"`
	Username   string    `json:"username"`
	Domain     string    `json:"domain,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent converts a manager notification into an Event.
func NewEvent(n servermanager.Notification) Event {
	occurred := n.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	return Event{
		Manager:    n.Manager,
		Action:     n.Action,
		Username:   n.Username,
		Domain:     n.Domain,
		OccurredAt: occurred.UTC(),
	}
}

// attributes are attached as message metadata by queue and topic sinks.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"manager": e.Manager,
		"action":  e.Action,
	}
}
