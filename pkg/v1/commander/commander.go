// Package commander is the public client for sending catalog maintenance
// commands to the service.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Action is the kind of catalog maintenance to run.
type Action string

// Catalog maintenance actions.
const (
	// ActionReconcile recomputes canonical pricing of all live project products.
	ActionReconcile Action = "reconcile"
	// ActionPurge permanently removes project products whose restore window has passed.
	ActionPurge Action = "purge"
)

// Command is one catalog maintenance command.
type Command struct {
	Action    Action `json:"action"`
	ProjectID int    `json:"projectId"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// CatalogCommander sends catalog maintenance commands.
type CatalogCommander struct {
	sender Sender
}

// NewCatalogCommander returns new CatalogCommander using provided sender for sending messages.
func NewCatalogCommander(sender Sender) CatalogCommander {
	return CatalogCommander{
		sender: sender,
	}
}

// SendReconcileCommand sends reconcile command for provided project.
func (c CatalogCommander) SendReconcileCommand(ctx context.Context, projectID int) error {
	return c.sendCommand(ctx, Command{
		Action:    ActionReconcile,
		ProjectID: projectID,
	})
}

// SendPurgeCommand sends purge command for provided project.
func (c CatalogCommander) SendPurgeCommand(ctx context.Context, projectID int) error {
	return c.sendCommand(ctx, Command{
		Action:    ActionPurge,
		ProjectID: projectID,
	})
}

func (c CatalogCommander) sendCommand(ctx context.Context, cmd Command) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal %s command: %w", cmd.Action, err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
