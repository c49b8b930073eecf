// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
)

// Auth implements AuthService on top of the user repository.
type Auth struct {
	users      store.UserRepository
	bcryptCost int
	log        *logger.Logger
}

// NewAuthService returns an Auth service hashing passwords at the configured
// bcrypt cost.
func NewAuthService(users store.UserRepository, cfg config.App, log *logger.Logger) *Auth {
	return &Auth{users: users, bcryptCost: cfg.BcryptCost, log: log}
}

// Register creates a new account. The username is pre-checked for uniqueness
// so the common conflict gets a clean error before hashing work; the insert
// itself still maps a unique violation to the same sentinel, which closes the
// race with a concurrent registration.
func (a *Auth) Register(ctx context.Context, username, password, role string) (models.User, error) {
	log := a.log

	if username == "" || password == "" || role == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	exists, err := a.users.UsernameExists(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "Auth.Register").Msg("username existence check failed")
		return models.User{}, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "Auth.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, username, hash, role)
	if err != nil {
		if !errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Err(err).Str("func", "Auth.Register").Msg("user creation failed")
		}
		return models.User{}, err
	}

	log.Info().Str("func", "Auth.Register").Int64("user_id", user.ID).Msg("user registered")

	return user, nil
}

// Login verifies the given credentials in three steps: resolve the username
// to an id, compare the stored hash, then read the role. The order matters;
// the hash compare never runs for an unknown username.
func (a *Auth) Login(ctx context.Context, username, password string) (models.User, error) {
	log := a.log

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	id, err := a.users.FindIDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "Auth.Login").Msg("username lookup failed")
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	hash, err := a.users.GetPasswordHash(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "Auth.Login").Msg("password hash lookup failed")
		return models.User{}, fmt.Errorf("reading password hash: %w", err)
	}

	if err := utils.CheckPassword(password, hash); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "Auth.Login").Msg("password comparison failed")
		return models.User{}, fmt.Errorf("comparing password: %w", err)
	}

	role, err := a.users.GetRole(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "Auth.Login").Msg("role lookup failed")
		return models.User{}, fmt.Errorf("reading role: %w", err)
	}

	return models.User{ID: id, Username: username, Role: role}, nil
}
