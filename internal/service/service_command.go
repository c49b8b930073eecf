// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
	"github.com/flashdeck/flashdeck/models"
)

// Commands implements CommandService.
type Commands struct {
	repo store.CommandRepository
	log  *logger.Logger
}

func NewCommandService(repo store.CommandRepository, log *logger.Logger) *Commands {
	return &Commands{repo: repo, log: log}
}

func (c *Commands) CreateCommand(ctx context.Context, command, description string) error {
	if command == "" || description == "" {
		return ErrInvalidDataProvided
	}

	if err := c.repo.CreateCommand(ctx, command, description); err != nil {
		c.log.Err(err).Str("func", "Commands.CreateCommand").Msg("command creation failed")
		return fmt.Errorf("creating command: %w", err)
	}

	return nil
}

func (c *Commands) ListCommands(ctx context.Context) ([]models.Command, error) {
	commands, err := c.repo.ListCommands(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Commands.ListCommands").Msg("command listing failed")
		return nil, fmt.Errorf("listing commands: %w", err)
	}

	return commands, nil
}

func (c *Commands) UpdateCommand(ctx context.Context, cmd models.Command) error {
	if cmd.ID == 0 || cmd.Command == "" || cmd.Description == "" {
		return ErrInvalidDataProvided
	}

	if err := c.repo.UpdateCommand(ctx, cmd); err != nil {
		c.log.Err(err).Str("func", "Commands.UpdateCommand").Int64("id", cmd.ID).Msg("command update failed")
		return fmt.Errorf("updating command: %w", err)
	}

	return nil
}

func (c *Commands) DeleteCommand(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrInvalidDataProvided
	}

	if err := c.repo.DeleteCommand(ctx, id); err != nil {
		c.log.Err(err).Str("func", "Commands.DeleteCommand").Int64("id", id).Msg("command deletion failed")
		return fmt.Errorf("deleting command: %w", err)
	}

	return nil
}
