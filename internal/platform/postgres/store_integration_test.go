//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/postgres"
	"github.com/phrazzld/foldertasks/internal/store"
	"github.com/phrazzld/foldertasks/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, ctx context.Context, tx *sql.Tx, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "password123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	user.Password = ""
	require.NoError(t, postgres.NewPostgresUserStore(tx, nil).Create(ctx, user))
	return user
}

func createFolder(t *testing.T, ctx context.Context, tx *sql.Tx, owner uuid.UUID, title string) *domain.Folder {
	t.Helper()
	folder, err := domain.NewFolder(owner, title)
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresFolderStore(tx, nil).Create(ctx, folder))
	return folder
}

func TestPostgresUserStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		user := createUser(t, ctx, tx, "alice@example.com")

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		got, err = users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)

		_, err = users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_DuplicateEmail(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		createUser(t, ctx, tx, "dup@example.com")

		user, err := domain.NewUser("dup@example.com", "password123")
		require.NoError(t, err)
		user.HashedPassword = "hash"
		err = postgres.NewPostgresUserStore(tx, nil).Create(ctx, user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestPostgresFolderStore_OwnerScope(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		folders := postgres.NewPostgresFolderStore(tx, nil)
		u1 := createUser(t, ctx, tx, "u1@example.com")
		u2 := createUser(t, ctx, tx, "u2@example.com")
		f1 := createFolder(t, ctx, tx, u1.ID, "Work")
		createFolder(t, ctx, tx, u2.ID, "Home")

		got, err := folders.GetForOwner(ctx, u1.ID, f1.ID)
		require.NoError(t, err)
		assert.Equal(t, "Work", got.Title)

		_, err = folders.GetForOwner(ctx, u2.ID, f1.ID)
		assert.ErrorIs(t, err, store.ErrFolderNotFound)

		list, err := folders.ListByOwner(ctx, u1.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, f1.ID, list[0].ID)
	})
}

func TestPostgresTaskStore_FolderScope(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		tasks := postgres.NewPostgresTaskStore(tx, nil)
		u := createUser(t, ctx, tx, "tasks@example.com")
		f1 := createFolder(t, ctx, tx, u.ID, "F1")
		f2 := createFolder(t, ctx, tx, u.ID, "F2")

		due := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
		task, err := domain.NewTask(f1.ID, "write report", due)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		got, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusNotStarted, got.Status)
		assert.True(t, due.Equal(got.DueDate))

		require.NoError(t, got.Apply("write report v2", domain.TaskStatusDone, due))
		assert.ErrorIs(t, tasks.Update(ctx, f2.ID, got), store.ErrTaskNotFound)
		require.NoError(t, tasks.Update(ctx, f1.ID, got))

		list, err := tasks.ListByFolder(ctx, f1.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "write report v2", list[0].Title)

		assert.ErrorIs(t, tasks.Delete(ctx, f2.ID, task.ID), store.ErrTaskNotFound)
		require.NoError(t, tasks.Delete(ctx, f1.ID, task.ID))

		_, err = tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
