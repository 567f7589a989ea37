package events

import (
	"context"
	"log/slog"

	"inkpress/src/core/ports"
)

// NoopPublisher is used when no broker is configured. It only records what
// would have been sent.
type NoopPublisher struct {
	log *slog.Logger
}

func NewNoopPublisher(log *slog.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) PublishPostPublished(_ context.Context, e ports.PostPublished) error {
	if p.log != nil {
		p.log.Debug("event dropped", "type", TypePostPublished, "post_id", e.PostID)
	}
	return nil
}

func (p *NoopPublisher) Revalidate(_ context.Context, path string) error {
	if p.log != nil {
		p.log.Debug("event dropped", "type", TypeViewRevalidate, "path", path)
	}
	return nil
}

func (p *NoopPublisher) Health(context.Context) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

var (
	_ ports.EventPublisher  = (*NoopPublisher)(nil)
	_ ports.ViewInvalidator = (*NoopPublisher)(nil)
)
