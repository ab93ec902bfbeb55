package repository

import (
	"context"
	"errors"

	"vuttr/internal/domain/entity"
)

var ErrToolNotFound = errors.New("tool not found")

// ToolRepository persists catalog tools together with their tags.
type ToolRepository interface {
	Create(ctx context.Context, tool *entity.Tool) error
	FindByID(ctx context.Context, id int) (*entity.Tool, error)
	FindByTitle(ctx context.Context, title string) (*entity.Tool, error)
	FindAll(ctx context.Context) ([]*entity.Tool, error)
	FindByTag(ctx context.Context, tag string) ([]*entity.Tool, error)

	// Update replaces the tool's fields and its whole tag set.
	Update(ctx context.Context, tool *entity.Tool) error

	// Delete returns ErrToolNotFound when nothing was removed.
	Delete(ctx context.Context, id int) error
}
