package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "vuttr/internal/delivery/context"
	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
	"vuttr/internal/errors"
	"vuttr/internal/mocks"
	"vuttr/internal/usecase"
)

type toolServiceFixtures struct {
	service   usecase.ToolUsecase
	txManager *mocks.TransactionManager
	toolRepo  *mocks.ToolRepository
}

func createTestToolService(t *testing.T) toolServiceFixtures {
	toolRepo := mocks.NewToolRepository(t)
	txManager := &mocks.TransactionManager{Factory: &mocks.RepositoryFactory{Tools: toolRepo}}

	service := NewToolService(ToolServiceParams{
		TxManager: txManager,
		ToolRepo:  toolRepo,
		Logger:    newDiscardLogger(),
	})

	return toolServiceFixtures{service: service, txManager: txManager, toolRepo: toolRepo}
}

func notionInput() *usecase.ToolInput {
	return &usecase.ToolInput{
		Title:       "Notion",
		Link:        "https://notion.so",
		Description: "All in one tool to organize teams and ideas.",
		Tags:        []string{"organization", " planning ", "organization"},
	}
}

func TestToolService_Create_Success(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()

	fx.toolRepo.On("FindByTitle", ctx, "Notion").Return(nil, repository.ErrToolNotFound).Once()
	fx.toolRepo.On("Create", ctx, mock.AnythingOfType("*entity.Tool")).
		Run(func(args mock.Arguments) {
			tool := args.Get(1).(*entity.Tool)
			tool.ID = 1
			tool.CreatedAt = time.Now()
			tool.UpdatedAt = tool.CreatedAt
		}).
		Return(nil).Once()

	view, err := fx.service.Create(ctx, notionInput())
	require.NoError(t, err)
	assert.Equal(t, 1, view.ID)
	assert.Equal(t, "Notion", view.Title)
	assert.Equal(t, []string{"organization", "planning"}, view.Tags)
	assert.Equal(t, 1, fx.txManager.Calls)
}

func TestToolService_Create_DuplicateTitle(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()

	fx.toolRepo.On("FindByTitle", ctx, "Notion").Return(&entity.Tool{ID: 7, Title: "Notion"}, nil).Once()

	_, err := fx.service.Create(ctx, notionInput())
	assert.ErrorIs(t, err, domainerrors.ErrToolAlreadyExists)
	fx.toolRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToolService_Create_ValidationFailed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ToolInput)
	}{
		{name: "missing title", mutate: func(in *usecase.ToolInput) { in.Title = "" }},
		{name: "title too long", mutate: func(in *usecase.ToolInput) { in.Title = strings.Repeat("a", 51) }},
		{name: "link not a url", mutate: func(in *usecase.ToolInput) { in.Link = "notion" }},
		{name: "no tags", mutate: func(in *usecase.ToolInput) { in.Tags = nil }},
		{name: "empty tag", mutate: func(in *usecase.ToolInput) { in.Tags = []string{""} }},
		{name: "whitespace title", mutate: func(in *usecase.ToolInput) { in.Title = "   " }},
		{name: "whitespace tags only", mutate: func(in *usecase.ToolInput) { in.Tags = []string{"  ", "\t"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestToolService(t)
			input := notionInput()
			tt.mutate(input)

			_, err := fx.service.Create(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Zero(t, fx.txManager.Calls)
		})
	}
}

func TestToolService_Get(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()

	fx.toolRepo.On("FindByID", ctx, 1).Return(&entity.Tool{ID: 1, Title: "Notion", Tags: []string{"a"}}, nil).Once()
	fx.toolRepo.On("FindByID", ctx, 2).Return(nil, repository.ErrToolNotFound).Once()

	view, err := fx.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Notion", view.Title)

	_, err = fx.service.Get(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)

	_, err = fx.service.Get(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToolID)
}

func TestToolService_List(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()
	tools := []*entity.Tool{
		{ID: 1, Title: "Notion", Tags: []string{"organization"}},
		{ID: 2, Title: "json-server", Tags: []string{"api", "node"}},
	}

	fx.toolRepo.On("FindAll", ctx).Return(tools, nil).Once()
	fx.toolRepo.On("FindByTag", ctx, "node").Return(tools[1:], nil).Once()

	all, err := fx.service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tagged, err := fx.service.List(ctx, " node ")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "json-server", tagged[0].Title)
}

func TestToolService_List_Empty(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()

	fx.toolRepo.On("FindAll", ctx).Return(nil, nil).Once()

	views, err := fx.service.List(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestToolService_Update(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()
	existing := &entity.Tool{ID: 3, Title: "Old", Link: "https://old.io", Description: "d", Tags: []string{"x"}}

	fx.toolRepo.On("FindByID", ctx, 3).Return(existing, nil).Once()
	fx.toolRepo.On("FindByTitle", ctx, "Notion").Return(nil, repository.ErrToolNotFound).Once()
	fx.toolRepo.On("Update", ctx, existing).Return(nil).Once()

	view, err := fx.service.Update(ctx, 3, notionInput())
	require.NoError(t, err)
	assert.Equal(t, 3, view.ID)
	assert.Equal(t, "Notion", view.Title)
	assert.Equal(t, []string{"organization", "planning"}, view.Tags)
}

func TestToolService_Update_KeepsOwnTitle(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()
	existing := &entity.Tool{ID: 3, Title: "Notion", Tags: []string{"x"}}

	fx.toolRepo.On("FindByID", ctx, 3).Return(existing, nil).Once()
	fx.toolRepo.On("Update", ctx, existing).Return(nil).Once()

	_, err := fx.service.Update(ctx, 3, notionInput())
	require.NoError(t, err)
	fx.toolRepo.AssertNotCalled(t, "FindByTitle", mock.Anything, mock.Anything)
}

func TestToolService_Update_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		fx := createTestToolService(t)
		ctx := context.Background()
		fx.toolRepo.On("FindByID", ctx, 9).Return(nil, repository.ErrToolNotFound).Once()

		_, err := fx.service.Update(ctx, 9, notionInput())
		assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)
	})

	t.Run("title taken by another tool", func(t *testing.T) {
		fx := createTestToolService(t)
		ctx := context.Background()
		fx.toolRepo.On("FindByID", ctx, 3).Return(&entity.Tool{ID: 3, Title: "Old"}, nil).Once()
		fx.toolRepo.On("FindByTitle", ctx, "Notion").Return(&entity.Tool{ID: 4, Title: "Notion"}, nil).Once()

		_, err := fx.service.Update(ctx, 3, notionInput())
		assert.ErrorIs(t, err, domainerrors.ErrToolAlreadyExists)
	})

	t.Run("whitespace title", func(t *testing.T) {
		fx := createTestToolService(t)
		input := notionInput()
		input.Title = "   "

		_, err := fx.service.Update(context.Background(), 3, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Zero(t, fx.txManager.Calls)
	})

	t.Run("whitespace tags only", func(t *testing.T) {
		fx := createTestToolService(t)
		input := notionInput()
		input.Tags = []string{" "}

		_, err := fx.service.Update(context.Background(), 3, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		fx.toolRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		fx := createTestToolService(t)

		_, err := fx.service.Update(context.Background(), -1, notionInput())
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToolID)
	})
}

func TestToolService_Delete(t *testing.T) {
	fx := createTestToolService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("boom"), "delete tool")

	fx.toolRepo.On("Delete", ctx, 1).Return(nil).Once()
	fx.toolRepo.On("Delete", ctx, 2).Return(repository.ErrToolNotFound).Once()
	fx.toolRepo.On("Delete", ctx, 3).Return(dbErr).Once()

	require.NoError(t, fx.service.Delete(ctx, 1))
	assert.ErrorIs(t, fx.service.Delete(ctx, 2), domainerrors.ErrToolNotFound)
	assert.ErrorIs(t, fx.service.Delete(ctx, 3), dbErr)
	assert.ErrorIs(t, fx.service.Delete(ctx, 0), domainerrors.ErrInvalidToolID)
}

func TestToolService_Delete_LogsActor(t *testing.T) {
	var buf bytes.Buffer
	toolRepo := mocks.NewToolRepository(t)
	service := NewToolService(ToolServiceParams{
		TxManager: &mocks.TransactionManager{Factory: &mocks.RepositoryFactory{Tools: toolRepo}},
		ToolRepo:  toolRepo,
		Logger:    slog.New(slog.NewJSONHandler(&buf, nil)),
	})
	ctx := deliverycontext.WithUsername(context.Background(), "alice")

	toolRepo.On("Delete", ctx, 1).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 1))
	assert.Contains(t, buf.String(), `"actor":"alice"`)
	assert.Equal(t, "anonymous", actorOf(context.Background()))
}
