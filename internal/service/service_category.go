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

// Categories implements CategoryService.
type Categories struct {
	repo store.CategoryRepository
	log  *logger.Logger
}

func NewCategoryService(repo store.CategoryRepository, log *logger.Logger) *Categories {
	return &Categories{repo: repo, log: log}
}

func (c *Categories) CreateCategory(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidDataProvided
	}

	if err := c.repo.CreateCategory(ctx, name); err != nil {
		c.log.Err(err).Str("func", "Categories.CreateCategory").Msg("category creation failed")
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (c *Categories) ListCategories(ctx context.Context) ([]models.FlashcardCategory, error) {
	categories, err := c.repo.ListCategories(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Categories.ListCategories").Msg("category listing failed")
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return categories, nil
}

func (c *Categories) UpdateCategory(ctx context.Context, category models.FlashcardCategory) error {
	if category.ID == 0 || category.Name == "" {
		return ErrInvalidDataProvided
	}

	if err := c.repo.UpdateCategory(ctx, category); err != nil {
		c.log.Err(err).Str("func", "Categories.UpdateCategory").Int64("id", category.ID).Msg("category update failed")
		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (c *Categories) DeleteCategory(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrInvalidDataProvided
	}

	if err := c.repo.DeleteCategory(ctx, id); err != nil {
		c.log.Err(err).Str("func", "Categories.DeleteCategory").Int64("id", id).Msg("category deletion failed")
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}
