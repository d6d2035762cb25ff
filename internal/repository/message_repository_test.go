package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"message_board/internal/models"
	"message_board/internal/storage"
	"message_board/pkg/config"
)

func newTestRepository(t *testing.T) MessageRepository {
	t.Helper()
	db, err := storage.Open(config.DBConfig{
		Driver:       "sqlite",
		Path:         filepath.Join(t.TempDir(), "messages.db"),
		MaxOpenConns: 1,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Message{}))
	return NewRepositories(db).Message
}

func strPtr(s string) *string { return &s }

func TestMessageRepository_CreateAssignsIDAndCreatedAt(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	msg := &models.Message{Body: strPtr("hi"), Username: strPtr("ann")}
	req.NoError(repo.Create(ctx, msg))

	req.NotZero(msg.ID)
	req.True(msg.CreatedAt.After(before))
	req.Nil(msg.UpdatedAt)

	stored, err := repo.FindByID(ctx, msg.ID)
	req.NoError(err)
	req.Equal("hi", *stored.Body)
	req.Equal("ann", *stored.Username)
	req.Nil(stored.UpdatedAt)
	req.WithinDuration(msg.CreatedAt, stored.CreatedAt, time.Millisecond)
}

func TestMessageRepository_CreateWithNullFields(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	msg := &models.Message{}
	req.NoError(repo.Create(ctx, msg))

	stored, err := repo.FindByID(ctx, msg.ID)
	req.NoError(err)
	req.Nil(stored.Body)
	req.Nil(stored.Username)
	req.False(stored.CreatedAt.IsZero())
}

func TestMessageRepository_FindAllOrdersByCreatedAt(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// 故意以亂序插入
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		req.NoError(repo.Create(ctx, &models.Message{Body: strPtr(offset.String()), CreatedAt: base.Add(offset)}))
	}

	messages, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Len(messages, 3)
	for i := 1; i < len(messages); i++ {
		req.False(messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}
	req.Equal("0s", *messages[0].Body)
	req.Equal("2h0m0s", *messages[2].Body)
}

func TestMessageRepository_FindAllEmpty(t *testing.T) {
	repo := newTestRepository(t)

	messages, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, messages)
	require.Empty(t, messages)
}

func TestMessageRepository_FindByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	msg, err := repo.FindByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, msg)
}

func TestMessageRepository_UpdateWritesOnlyBodyAndUpdatedAt(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	msg := &models.Message{Body: strPtr("hi"), Username: strPtr("ann")}
	req.NoError(repo.Create(ctx, msg))
	createdAt := msg.CreatedAt

	now := time.Now().UTC()
	msg.Body = strPtr("edited")
	msg.UpdatedAt = &now
	msg.Username = strPtr("mallory") // 不應被寫入
	req.NoError(repo.Update(ctx, msg))

	stored, err := repo.FindByID(ctx, msg.ID)
	req.NoError(err)
	req.Equal("edited", *stored.Body)
	req.Equal("ann", *stored.Username)
	req.NotNil(stored.UpdatedAt)
	req.WithinDuration(now, *stored.UpdatedAt, time.Millisecond)
	req.WithinDuration(createdAt, stored.CreatedAt, time.Millisecond)
}

func TestMessageRepository_UpdateToNullBody(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	msg := &models.Message{Body: strPtr("hi")}
	req.NoError(repo.Create(ctx, msg))

	now := time.Now().UTC()
	msg.Body = nil
	msg.UpdatedAt = &now
	req.NoError(repo.Update(ctx, msg))

	stored, err := repo.FindByID(ctx, msg.ID)
	req.NoError(err)
	req.Nil(stored.Body)
}

func TestMessageRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	keep := &models.Message{Body: strPtr("keep")}
	gone := &models.Message{Body: strPtr("gone")}
	req.NoError(repo.Create(ctx, keep))
	req.NoError(repo.Create(ctx, gone))

	req.NoError(repo.Delete(ctx, gone))

	_, err := repo.FindByID(ctx, gone.ID)
	req.ErrorIs(err, ErrNotFound)

	messages, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(keep.ID, messages[0].ID)

	// 再刪一次不會復活也不會成功
	req.ErrorIs(repo.Delete(ctx, gone), ErrNotFound)
}

func TestMessageRepository_IDsAreNotReused(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &models.Message{}
	req.NoError(repo.Create(ctx, first))
	req.NoError(repo.Delete(ctx, first))

	second := &models.Message{}
	req.NoError(repo.Create(ctx, second))
	req.Greater(second.ID, first.ID)
}

func TestMessageRepository_CanceledContext(t *testing.T) {
	repo := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
}
