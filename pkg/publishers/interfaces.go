package publishers

import "context"

// Publisher sends account events to a downstream sink (HTTP, SQS, etc).
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
	Close() error
}
