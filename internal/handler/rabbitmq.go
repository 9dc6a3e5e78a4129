package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/catalogops/catalog-sync/internal/platform/rabbitmq"
	"github.com/catalogops/catalog-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Updater runs bulk catalog maintenance for a project.
type Updater interface {
	Reconcile(ctx context.Context, projectID int) error
	Purge(ctx context.Context, projectID int) (int32, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq     *rabbitmq.RabbitMQ
	updater Updater
	logger  *zerolog.Logger
}

// NewRMQHandler returns new RMQHandler.
func NewRMQHandler(rmq *rabbitmq.RabbitMQ, updater Updater, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:     rmq,
		updater: updater,
		logger:  logger,
	}
}

// Start starts consuming and handling catalog maintenance commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("action", string(cmd.Action)).
			Int("projectId", cmd.ProjectID).
			Msg("command started")

		if err := h.handleCommand(ctx, cmd); err != nil {
			return fmt.Errorf("%s failed: %w", cmd.Action, err)
		}

		h.logger.Debug().
			Str("action", string(cmd.Action)).
			Int("projectId", cmd.ProjectID).
			Msg("command finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) handleCommand(ctx context.Context, cmd *commander.Command) error {
	switch cmd.Action {
	case commander.ActionReconcile:
		return h.updater.Reconcile(ctx, cmd.ProjectID)
	case commander.ActionPurge:
		purged, err := h.updater.Purge(ctx, cmd.ProjectID)
		if err != nil {
			return err
		}
		h.logger.Info().
			Int("projectId", cmd.ProjectID).
			Int32("purgedProducts", purged).
			Msg("purged deleted products")
		return nil
	default:
		return fmt.Errorf("unknown command action %q", cmd.Action)
	}
}

func decodeMessage(msg []byte) (*commander.Command, error) {
	var cmd commander.Command
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode command: %w", err)
	}

	return &cmd, err
}
