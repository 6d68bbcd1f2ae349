package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Publisher emits audit events to a primary store and any number of
// additional sinks. In sync mode Emit blocks until the primary write
// succeeds. With an async buffer, Emit enqueues and a background worker
// drains the queue; Close flushes whatever is still buffered.
type Publisher struct {
	store  Store
	sinks  []Appender
	logger *slog.Logger

	inbox chan Event
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithAsyncBuffer enables asynchronous emission with the given queue size.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.inbox = make(chan Event, size)
	}
}

// WithSink adds a secondary destination. Sink failures are logged, never
// returned: the primary store is the durability guarantee.
func WithSink(sink Appender) Option {
	return func(p *Publisher) {
		p.sinks = append(p.sinks, sink)
	}
}

// WithLogger sets a logger for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a publisher backed by the given store.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit records an event. A zero ID or Timestamp is filled in here so
// callers only supply domain fields.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if p.inbox != nil {
		select {
		case p.inbox <- event:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return p.persist(ctx, event)
}

// ListRecent returns the most recent events from the primary store.
func (p *Publisher) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	return p.store.ListRecent(ctx, limit)
}

// Close flushes the async queue and stops the background worker.
// Safe to call more than once.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		if p.inbox != nil {
			close(p.inbox)
			p.wg.Wait()
		}
	})
	return nil
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.inbox {
		if err := p.persist(context.Background(), event); err != nil {
			p.logger.Error("audit event dropped",
				"event_id", event.ID,
				"error", err,
			)
		}
	}
}

func (p *Publisher) persist(ctx context.Context, event Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	for _, sink := range p.sinks {
		if err := sink.Append(ctx, event); err != nil {
			p.logger.WarnContext(ctx, "audit sink append failed",
				"event_id", event.ID,
				"error", err,
			)
		}
	}
	return nil
}
