package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/application/ports"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/events"

	"go.uber.org/zap"
)

// gestureFunc applies one gesture to a locked session
type gestureFunc func(s *aggregates.Session) (commands.Result, error)

// GestureRunner applies gestures to sessions one at a time and fans out the
// outcome. Events are published after the session lock is released; the
// view is pushed to subscribers before, so they observe gestures in order.
type GestureRunner struct {
	repo      ports.SessionRepository
	publisher ports.EventPublisher
	notifier  ports.ViewNotifier
	logger    *zap.Logger
}

// NewGestureRunner creates a new gesture runner
func NewGestureRunner(
	repo ports.SessionRepository,
	publisher ports.EventPublisher,
	notifier ports.ViewNotifier,
	logger *zap.Logger,
) *GestureRunner {
	return &GestureRunner{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

func (r *GestureRunner) run(ctx context.Context, sessionID string, fn gestureFunc) (commands.Result, error) {
	var (
		result  commands.Result
		pending []events.DomainEvent
	)

	err := r.repo.Update(ctx, sessionID, func(s *aggregates.Session) error {
		res, err := fn(s)
		if err != nil {
			return err
		}

		pending = s.GetUncommittedEvents()
		s.MarkEventsAsCommitted()

		res.View = s.View()
		if res.Changed && r.notifier != nil {
			r.notifier.Notify(sessionID, res.View)
		}
		result = res
		return nil
	})
	if err != nil {
		return commands.Result{}, err
	}

	r.publish(ctx, sessionID, pending)
	return result, nil
}

func (r *GestureRunner) publish(ctx context.Context, sessionID string, pending []events.DomainEvent) {
	if len(pending) == 0 || r.publisher == nil {
		return
	}
	// The gesture has already been applied; a publishing failure must not undo it.
	if err := r.publisher.PublishBatch(ctx, pending); err != nil {
		r.logger.Warn("Failed to publish domain events",
			zap.String("sessionID", sessionID),
			zap.Int("count", len(pending)),
			zap.Error(err),
		)
	}
}
