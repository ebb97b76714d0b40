package publishers

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
)

// Fanout dispatches events to all configured publishers.
type Fanout struct {
	publishers []Publisher
	log        servermanager.Logger
}

var _ servermanager.Notifier = (*Fanout)(nil)

// NewFanout builds a dispatcher that fans out events across publishers.
func NewFanout(pubs []Publisher, log servermanager.Logger) *Fanout {
	cp := make([]Publisher, 0, len(pubs))
	for _, p := range pubs {
		if p == nil {
			continue
		}
		cp = append(cp, p)
	}
	return &Fanout{publishers: cp, log: servermanager.EnsureLogger(log)}
}

// Publish forwards the event to every registered publisher.
// It returns the number of publishers that successfully handled the event.
func (f *Fanout) Publish(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.publishers) == 0 {
		return 0, nil
	}

	var errs []error
	successful := 0
	for _, p := range f.publishers {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s publisher[%s]: %w", p.Type(), p.ID(), err))
		} else {
			successful++
		}
	}
	return successful, errors.Join(errs...)
}

// Notify publishes n and logs delivery failures instead of returning them.
func (f *Fanout) Notify(ctx context.Context, n servermanager.Notification) {
	if f == nil || len(f.publishers) == 0 {
		return
	}
	evt := NewEvent(n)
	delivered, err := f.Publish(ctx, evt)
	if err != nil {
		f.log.ErrorObj("account event delivery failed", "event_delivery", map[string]any{
			"manager":   evt.Manager,
			"action":    evt.Action,
			"username":  evt.Username,
			"delivered": delivered,
			"error":     err.Error(),
		})
		return
	}
	f.log.DebugObj("account event delivered", "event_delivery", map[string]any{
		"action":    evt.Action,
		"username":  evt.Username,
		"delivered": delivered,
	})
}

// Size returns the number of active publishers.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.publishers)
}

// Close releases every publisher.
func (f *Fanout) Close() error {
	if f == nil {
		return nil
	}
	return closeAll(f.publishers)
}
