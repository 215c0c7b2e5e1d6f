package handlers

import (
	"context"
	"fmt"

	"grapheditor/application/commands"
	"grapheditor/application/ports"
	"grapheditor/domain/config"
	"grapheditor/domain/core/aggregates"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSessionHandler opens new editor sessions
type StartSessionHandler struct {
	repo   ports.SessionRepository
	runner *GestureRunner
	cfg    *config.DomainConfig
	logger *zap.Logger
	newID  func() string
}

// NewStartSessionHandler creates a new start session handler
func NewStartSessionHandler(
	repo ports.SessionRepository,
	runner *GestureRunner,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *StartSessionHandler {
	return &StartSessionHandler{
		repo:   repo,
		runner: runner,
		cfg:    cfg,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Handle creates a session seeded from the domain config and stores it
func (h *StartSessionHandler) Handle(ctx context.Context, cmd commands.StartSessionCommand) (commands.Result, error) {
	session, err := aggregates.NewSession(h.newID(), h.cfg)
	if err != nil {
		return commands.Result{}, fmt.Errorf("failed to create session: %w", err)
	}

	pending := session.GetUncommittedEvents()
	session.MarkEventsAsCommitted()
	view := session.View()

	if err := h.repo.Save(ctx, session); err != nil {
		return commands.Result{}, fmt.Errorf("failed to save session: %w", err)
	}

	h.runner.publish(ctx, session.ID(), pending)

	h.logger.Info("Session started",
		zap.String("sessionID", session.ID()),
		zap.Int("nodes", session.Graph().NodeCount()),
		zap.Int("edges", session.Graph().EdgeCount()),
	)

	return commands.Result{View: view, Changed: true}, nil
}

// EndSessionHandler discards sessions
type EndSessionHandler struct {
	repo     ports.SessionRepository
	notifier ports.ViewNotifier
	logger   *zap.Logger
}

// NewEndSessionHandler creates a new end session handler
func NewEndSessionHandler(repo ports.SessionRepository, notifier ports.ViewNotifier, logger *zap.Logger) *EndSessionHandler {
	return &EndSessionHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle deletes the session and closes its view streams
func (h *EndSessionHandler) Handle(ctx context.Context, cmd commands.EndSessionCommand) (commands.Result, error) {
	if err := h.repo.Delete(ctx, cmd.SessionID); err != nil {
		return commands.Result{}, err
	}
	if h.notifier != nil {
		h.notifier.Close(cmd.SessionID)
	}

	h.logger.Info("Session ended", zap.String("sessionID", cmd.SessionID))
	return commands.Result{Changed: true}, nil
}
