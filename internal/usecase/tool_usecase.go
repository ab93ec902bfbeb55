package usecase

import (
	"context"
	"time"
)

// ToolInput is the payload for creating or replacing a tool.
type ToolInput struct {
	Title       string   `json:"title" validate:"required,max=50"`
	Link        string   `json:"link" validate:"required,url,max=50"`
	Description string   `json:"description" validate:"required,max=2000"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required,max=50"`
}

// ToolView is the response shape of a tool.
type ToolView struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToolUsecase defines the catalog operations.
type ToolUsecase interface {
	Create(ctx context.Context, input *ToolInput) (*ToolView, error)
	Get(ctx context.Context, id int) (*ToolView, error)
	// List returns every tool, or only those carrying tag when tag is non-empty.
	List(ctx context.Context, tag string) ([]*ToolView, error)
	Update(ctx context.Context, id int, input *ToolInput) (*ToolView, error)
	Delete(ctx context.Context, id int) error
}
