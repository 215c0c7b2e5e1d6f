package messaging

import (
	"context"
	"errors"

	"grapheditor/application/ports"
	"grapheditor/domain/events"

	"go.uber.org/zap"
)

// EventRecorder receives every published event
type EventRecorder interface {
	RecordEvent(event events.DomainEvent)
}

// LogPublisher publishes domain events to the structured log and to an
// optional recorder. Sessions are never persisted, so events are not stored.
type LogPublisher struct {
	logger   *zap.Logger
	recorder EventRecorder
}

var _ ports.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a new log publisher. recorder may be nil.
func NewLogPublisher(logger *zap.Logger, recorder EventRecorder) *LogPublisher {
	return &LogPublisher{
		logger:   logger,
		recorder: recorder,
	}
}

// PublishBatch publishes events in order
func (p *LogPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.Debug("Domain event",
			zap.String("type", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
			zap.Int("version", event.GetVersion()),
			zap.Time("timestamp", event.GetTimestamp()),
			zap.Any("event", event),
		)

		if p.recorder != nil {
			p.recorder.RecordEvent(event)
		}
	}
	return nil
}

// FanoutPublisher hands every batch to each publisher in turn. A failing
// publisher does not stop the others; their errors are joined.
type FanoutPublisher struct {
	publishers []ports.EventPublisher
}

var _ ports.EventPublisher = (*FanoutPublisher)(nil)

// NewFanoutPublisher creates a publisher over publishers
func NewFanoutPublisher(publishers ...ports.EventPublisher) *FanoutPublisher {
	return &FanoutPublisher{publishers: publishers}
}

// PublishBatch publishes batch to every publisher
func (p *FanoutPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	var errs []error
	for _, pub := range p.publishers {
		if err := pub.PublishBatch(ctx, batch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
