package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
	"vuttr/internal/errors"
	"vuttr/internal/infra/persistence/model"
)

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (repo *toolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	toolM := fromToolDomain(tool)

	if err := repo.db.WithContext(ctx).Create(toolM).Error; err != nil {
		return translateToolWriteError(err, "failed to create tool")
	}

	tool.ID = toolM.ID
	tool.CreatedAt = toolM.CreatedAt
	tool.UpdatedAt = toolM.UpdatedAt

	return nil
}

func (repo *toolRepository) FindByID(ctx context.Context, id int) (*entity.Tool, error) {
	var toolM model.ToolModel

	err := repo.withTags(ctx).Where("id = ?", id).Take(&toolM).Error
	if err != nil {
		return nil, translateToolReadError(err)
	}

	return toToolDomain(&toolM), nil
}

func (repo *toolRepository) FindByTitle(ctx context.Context, title string) (*entity.Tool, error) {
	var toolM model.ToolModel

	err := repo.withTags(ctx).Where("title = ?", title).Take(&toolM).Error
	if err != nil {
		return nil, translateToolReadError(err)
	}

	return toToolDomain(&toolM), nil
}

func (repo *toolRepository) FindAll(ctx context.Context) ([]*entity.Tool, error) {
	var toolMs []model.ToolModel

	if err := repo.withTags(ctx).Order("id").Find(&toolMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tools")
	}

	return toToolDomainList(toolMs), nil
}

func (repo *toolRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Tool, error) {
	var toolMs []model.ToolModel

	tagged := repo.db.WithContext(ctx).Model(&model.TagModel{}).Select("tool_id").Where("name = ?", tag)
	if err := repo.withTags(ctx).Where("id IN (?)", tagged).Order("id").Find(&toolMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tools by tag")
	}

	return toToolDomainList(toolMs), nil
}

// Update rewrites the tool row and swaps its tag set. Callers wrap it in a
// transaction so the tag swap is atomic.
func (repo *toolRepository) Update(ctx context.Context, tool *entity.Tool) error {
	toolM := fromToolDomain(tool)
	toolM.UpdatedAt = time.Now()
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.ToolModel{ID: tool.ID}).Updates(map[string]any{
		"title":       toolM.Title,
		"link":        toolM.Link,
		"description": toolM.Description,
		"updated_at":  toolM.UpdatedAt,
	})
	if result.Error != nil {
		return translateToolWriteError(result.Error, "failed to update tool")
	}
	if result.RowsAffected == 0 {
		return repository.ErrToolNotFound
	}

	if err := db.Where("tool_id = ?", tool.ID).Delete(&model.TagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear tool tags")
	}
	if len(toolM.Tags) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&toolM.Tags).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to write tool tags")
		}
	}

	tool.UpdatedAt = toolM.UpdatedAt

	return nil
}

func (repo *toolRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).Delete(&model.ToolModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tool")
	}
	if result.RowsAffected == 0 {
		return repository.ErrToolNotFound
	}

	return nil
}

func (repo *toolRepository) withTags(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("name")
	})
}

func translateToolReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrToolNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to find tool")
}

func translateToolWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrToolAlreadyExists.WrapMessage("title already used")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toToolDomain(toolM *model.ToolModel) *entity.Tool {
	tags := make([]string, 0, len(toolM.Tags))
	for _, tag := range toolM.Tags {
		tags = append(tags, tag.Name)
	}

	return &entity.Tool{
		ID:          toolM.ID,
		Title:       toolM.Title,
		Link:        toolM.Link,
		Description: toolM.Description,
		Tags:        tags,
		CreatedAt:   toolM.CreatedAt,
		UpdatedAt:   toolM.UpdatedAt,
	}
}

func toToolDomainList(toolMs []model.ToolModel) []*entity.Tool {
	tools := make([]*entity.Tool, 0, len(toolMs))
	for i := range toolMs {
		tools = append(tools, toToolDomain(&toolMs[i]))
	}

	return tools
}

func fromToolDomain(tool *entity.Tool) *model.ToolModel {
	tags := make([]model.TagModel, 0, len(tool.Tags))
	for _, name := range tool.Tags {
		tags = append(tags, model.TagModel{ToolID: tool.ID, Name: name})
	}

	return &model.ToolModel{
		ID:          tool.ID,
		Title:       tool.Title,
		Link:        tool.Link,
		Description: tool.Description,
		Tags:        tags,
		CreatedAt:   tool.CreatedAt,
		UpdatedAt:   tool.UpdatedAt,
	}
}
