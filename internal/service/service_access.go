// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
)

// Access implements AccessService.
type Access struct {
	users store.UserRepository
	log   *logger.Logger
}

func NewAccessService(users store.UserRepository, log *logger.Logger) *Access {
	return &Access{users: users, log: log}
}

// IsAdmin re-checks the role against the database rather than trusting the
// session copy, so a demoted user loses admin access on their next request.
func (a *Access) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	isAdmin, err := a.users.IsAdmin(ctx, userID)
	if err != nil {
		a.log.Err(err).Str("func", "Access.IsAdmin").Msg("admin check failed")
		return false, fmt.Errorf("checking admin role: %w", err)
	}

	return isAdmin, nil
}
