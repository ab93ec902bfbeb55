package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "vuttr/internal/delivery/context"
	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
	"vuttr/internal/errors"
	"vuttr/internal/usecase"
)

type toolService struct {
	txManager repository.TransactionManager
	toolRepo  repository.ToolRepository
	logger    *slog.Logger
}

// ToolServiceParams holds dependencies for ToolService, injected by Fx.
type ToolServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ToolRepo  repository.ToolRepository
	Logger    *slog.Logger
}

func NewToolService(params ToolServiceParams) usecase.ToolUsecase {
	return &toolService{
		txManager: params.TxManager,
		toolRepo:  params.ToolRepo,
		logger:    params.Logger,
	}
}

func (srv *toolService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new tool; titles are unique across the catalog.
func (srv *toolService) Create(ctx context.Context, input *usecase.ToolInput) (*usecase.ToolView, error) {
	input = normalizeToolInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tool := &entity.Tool{
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
		Tags:        input.Tags,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		toolRepo := repoFactory.ToolRepo()

		if err := ensureTitleAvailable(ctx, toolRepo, tool.Title, 0); err != nil {
			return err
		}

		return toolRepo.Create(ctx, tool)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create tool", slog.String("title", tool.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create tool")
	}

	srv.log(ctx).Info("Tool created", slog.Int("toolID", tool.ID), slog.String("actor", actorOf(ctx)))

	return toToolView(tool), nil
}

func (srv *toolService) Get(ctx context.Context, id int) (*usecase.ToolView, error) {
	if id <= 0 {
		return nil, domainerrors.ErrInvalidToolID
	}

	tool, err := srv.toolRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapToolError(err, id)
	}

	return toToolView(tool), nil
}

func (srv *toolService) List(ctx context.Context, tag string) ([]*usecase.ToolView, error) {
	var (
		tools []*entity.Tool
		err   error
	)

	tag = strings.TrimSpace(tag)
	if tag == "" {
		tools, err = srv.toolRepo.FindAll(ctx)
	} else {
		tools, err = srv.toolRepo.FindByTag(ctx, tag)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tools")
	}

	views := make([]*usecase.ToolView, 0, len(tools))
	for _, tool := range tools {
		views = append(views, toToolView(tool))
	}

	return views, nil
}

// Update replaces every field and the full tag set of an existing tool.
func (srv *toolService) Update(ctx context.Context, id int, input *usecase.ToolInput) (*usecase.ToolView, error) {
	if id <= 0 {
		return nil, domainerrors.ErrInvalidToolID
	}
	input = normalizeToolInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Tool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		toolRepo := repoFactory.ToolRepo()

		existing, err := toolRepo.FindByID(ctx, id)
		if err != nil {
			return mapToolError(err, id)
		}

		if input.Title != existing.Title {
			if err := ensureTitleAvailable(ctx, toolRepo, input.Title, id); err != nil {
				return err
			}
		}

		existing.Title = input.Title
		existing.Link = input.Link
		existing.Description = input.Description
		existing.Tags = input.Tags

		if err := toolRepo.Update(ctx, existing); err != nil {
			return mapToolError(err, id)
		}
		updated = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update tool", slog.Int("toolID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update tool")
	}

	srv.log(ctx).Info("Tool updated", slog.Int("toolID", id), slog.String("actor", actorOf(ctx)))

	return toToolView(updated), nil
}

// actorOf names the authenticated user behind a catalog change.
func actorOf(ctx context.Context) string {
	if username := deliverycontext.GetUsername(ctx); username != "" {
		return username
	}

	return "anonymous"
}

func (srv *toolService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domainerrors.ErrInvalidToolID
	}

	if err := srv.toolRepo.Delete(ctx, id); err != nil {
		return mapToolError(err, id)
	}

	srv.log(ctx).Info("Tool deleted", slog.Int("toolID", id), slog.String("actor", actorOf(ctx)))

	return nil
}

func ensureTitleAvailable(ctx context.Context, toolRepo repository.ToolRepository, title string, selfID int) error {
	existing, err := toolRepo.FindByTitle(ctx, title)
	if errors.Is(err, repository.ErrToolNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find tool by title")
	}
	if existing.ID == selfID {
		return nil
	}

	return domainerrors.ErrToolAlreadyExists.WrapMessage("title already used by tool " + title)
}

func mapToolError(err error, id int) error {
	if errors.Is(err, repository.ErrToolNotFound) {
		return errors.Wrapf(domainerrors.ErrToolNotFound, "tool %d", id)
	}

	return err
}

// normalizeToolInput returns a trimmed copy of input so validation sees
// exactly what would be stored.
func normalizeToolInput(input *usecase.ToolInput) *usecase.ToolInput {
	if input == nil {
		return nil
	}

	return &usecase.ToolInput{
		Title:       strings.TrimSpace(input.Title),
		Link:        strings.TrimSpace(input.Link),
		Description: strings.TrimSpace(input.Description),
		Tags:        normalizeTags(input.Tags),
	}
}

// normalizeTags trims and de-duplicates tags keeping first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

func toToolView(tool *entity.Tool) *usecase.ToolView {
	tags := make([]string, len(tool.Tags))
	copy(tags, tool.Tags)

	return &usecase.ToolView{
		ID:          tool.ID,
		Title:       tool.Title,
		Link:        tool.Link,
		Description: tool.Description,
		Tags:        tags,
		CreatedAt:   tool.CreatedAt,
		UpdatedAt:   tool.UpdatedAt,
	}
}
