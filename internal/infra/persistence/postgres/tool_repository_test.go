package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
)

var toolColumns = []string{"id", "title", "link", "description", "created_at", "updated_at"}

func TestToolRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "tools" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(toolColumns).AddRow(1, "Notion", "https://notion.so", "notes", now, now))
	mock.ExpectQuery(`SELECT \* FROM "tool_tags" WHERE "tool_tags"."tool_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"tool_id", "name"}).AddRow(1, "organization").AddRow(1, "planning"))

	tool, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Notion", tool.Title)
	assert.Equal(t, []string{"organization", "planning"}, tool.Tags)
}

func TestToolRepository_FindByTitle_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tools" WHERE title = \$1`).
		WillReturnRows(sqlmock.NewRows(toolColumns))

	_, err := repo.FindByTitle(context.Background(), "Missing")
	assert.ErrorIs(t, err, repository.ErrToolNotFound)
}

func TestToolRepository_FindAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tools" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(toolColumns))

	tools, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}

func TestToolRepository_FindByTag(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "tools" WHERE id IN \(SELECT .* FROM "tool_tags" WHERE name = \$1\)`).
		WithArgs("node").
		WillReturnRows(sqlmock.NewRows(toolColumns).AddRow(2, "json-server", "https://j.io", "fake api", now, now))
	mock.ExpectQuery(`SELECT \* FROM "tool_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"tool_id", "name"}).AddRow(2, "node"))

	tools, err := repo.FindByTag(context.Background(), "node")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Contains(t, tools[0].Tags, "node")
}

func TestToolRepository_FindByTag_HonoursContext(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewToolRepository(db)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByTag(ctx, "node")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToolRepository_Create_DuplicateTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(`INSERT INTO "tools"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Tool{Title: "Notion", Link: "https://notion.so", Description: "d", Tags: []string{"a"}})
	assert.ErrorIs(t, err, domainerrors.ErrToolAlreadyExists)
}

func TestToolRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectExec(`DELETE FROM "tools" WHERE "tools"."id" = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "tools"`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), repository.ErrToolNotFound)
}

func TestToolRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectExec(`UPDATE "tools" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Tool{ID: 5, Title: "T", Link: "https://t.io", Description: "d", Tags: []string{"a"}})
	assert.ErrorIs(t, err, repository.ErrToolNotFound)
}

func TestToolRepository_Update_ReplacesTags(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectExec(`UPDATE "tools" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "tool_tags" WHERE tool_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "tool_tags" .* ON CONFLICT DO NOTHING`).
		WithArgs(5, "api", 5, "node").
		WillReturnResult(sqlmock.NewResult(0, 2))

	tool := &entity.Tool{ID: 5, Title: "json-server", Link: "https://j.io", Description: "d", Tags: []string{"api", "node"}}
	require.NoError(t, repo.Update(context.Background(), tool))
	assert.False(t, tool.UpdatedAt.IsZero())
}
