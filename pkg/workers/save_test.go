package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/cbodonnell/civboard/mocks/github.com/cbodonnell/civboard/pkg/repositories"
	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/queue"
	"github.com/cbodonnell/civboard/pkg/repositories"
	"github.com/cbodonnell/civboard/pkg/repositories/models"
	"github.com/cbodonnell/civboard/pkg/state"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (*SaveBoardWorker, *mocks.Repository, *state.InMemoryBoardManager) {
	repo := mocks.NewRepository(t)
	dirty := queue.NewInMemoryQueue[string](100)
	manager := state.NewInMemoryBoardManager(dirty)
	worker := NewSaveBoardWorker(NewSaveBoardWorkerOptions{
		Repository: repo,
		Manager:    manager,
		DirtyQueue: dirty,
		Interval:   time.Hour,
	})
	return worker, repo, manager
}

func TestSaveBoardWorker_Flush(t *testing.T) {
	ctx := context.Background()
	worker, repo, manager := newTestWorker(t)

	id, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	err = manager.Update(ctx, id, func(b *board.Board) error {
		return b.SetTileTerrain(0, 0, types.TerrainDesert)
	})
	require.NoError(t, err)

	repo.On("SaveBoard", mock.Anything, mock.MatchedBy(func(b *models.Board) bool {
		parsed, err := board.ParseBoard(b.Data)
		if err != nil {
			return false
		}
		terrain, _ := parsed.TileTerrain(0, 0)
		return b.ID == id && b.Size == 3 && terrain == types.TerrainDesert
	})).Return(nil).Once()

	assert.Equal(t, 1, worker.Flush(ctx))
	// nothing changed since
	assert.Equal(t, 0, worker.Flush(ctx))
}

func TestSaveBoardWorker_FlushRetriesFailedSave(t *testing.T) {
	ctx := context.Background()
	worker, repo, manager := newTestWorker(t)

	id, err := manager.Create(ctx, 3)
	require.NoError(t, err)

	repo.On("SaveBoard", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
	assert.Equal(t, 0, worker.Flush(ctx))

	repo.On("SaveBoard", mock.Anything, mock.MatchedBy(func(b *models.Board) bool {
		return b.ID == id
	})).Return(nil).Once()
	assert.Equal(t, 1, worker.Flush(ctx))
}

func TestSaveBoardWorker_FlushDeletes(t *testing.T) {
	ctx := context.Background()
	worker, repo, manager := newTestWorker(t)

	saved, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	unsaved, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	_, err = manager.Snapshot(ctx, saved)
	require.NoError(t, err)
	_, err = manager.Snapshot(ctx, unsaved)
	require.NoError(t, err)
	worker.dirty.Clear()

	require.NoError(t, manager.Delete(ctx, saved))
	require.NoError(t, manager.Delete(ctx, unsaved))

	repo.On("DeleteBoard", mock.Anything, saved).Return(nil).Once()
	repo.On("DeleteBoard", mock.Anything, unsaved).Return(&repositories.ErrNotFound{}).Once()

	assert.Equal(t, 1, worker.Flush(ctx))
}

func TestSaveBoardWorker_FlushSavesPendingBoards(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	dirty := queue.NewInMemoryQueue[string](1)
	manager := state.NewInMemoryBoardManager(dirty)
	worker := NewSaveBoardWorker(NewSaveBoardWorkerOptions{
		Repository: repo,
		Manager:    manager,
		DirtyQueue: dirty,
		Interval:   time.Hour,
	})

	queued, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	held, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 1, dirty.Size())

	repo.On("SaveBoard", mock.Anything, mock.MatchedBy(func(b *models.Board) bool {
		return b.ID == queued
	})).Return(nil).Once()
	repo.On("SaveBoard", mock.Anything, mock.MatchedBy(func(b *models.Board) bool {
		return b.ID == held
	})).Return(nil).Once()

	assert.Equal(t, 2, worker.Flush(ctx))
	assert.Equal(t, 0, worker.Flush(ctx))
}

func TestSaveBoardWorker_FlushRetriesFailedDelete(t *testing.T) {
	ctx := context.Background()
	worker, repo, manager := newTestWorker(t)

	id, err := manager.Create(ctx, 3)
	require.NoError(t, err)
	_, err = manager.Snapshot(ctx, id)
	require.NoError(t, err)
	worker.dirty.Clear()
	require.NoError(t, manager.Delete(ctx, id))

	repo.On("DeleteBoard", mock.Anything, id).Return(errors.New("connection reset")).Once()
	assert.Equal(t, 0, worker.Flush(ctx))

	repo.On("DeleteBoard", mock.Anything, id).Return(nil).Once()
	assert.Equal(t, 1, worker.Flush(ctx))
}

func TestSaveBoardWorker_StartFlushesOnShutdown(t *testing.T) {
	worker, repo, manager := newTestWorker(t)

	id, err := manager.Create(context.Background(), 3)
	require.NoError(t, err)
	repo.On("SaveBoard", mock.Anything, mock.MatchedBy(func(b *models.Board) bool {
		return b.ID == id
	})).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestLoadBoards(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	dirty := queue.NewInMemoryQueue[string](10)
	manager := state.NewInMemoryBoardManager(dirty)

	stored := board.New()
	require.NoError(t, stored.SetTileTerrain(4, 4, types.TerrainTundra))
	goodID := uuid.NewString()

	repo.On("ListBoards", mock.Anything).Return([]*models.Board{
		{ID: goodID, Size: 10, Data: stored.String()},
		{ID: uuid.NewString(), Size: 3, Data: "garbage"},
	}, nil).Once()

	n, err := LoadBoards(ctx, repo, manager)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{goodID}, manager.IDs(ctx))
	assert.Zero(t, dirty.Size())

	err = manager.View(ctx, goodID, func(b *board.Board) error {
		assert.True(t, b.Equal(stored))
		return nil
	})
	require.NoError(t, err)
}

func TestLoadBoards_ListError(t *testing.T) {
	repo := mocks.NewRepository(t)
	manager := state.NewInMemoryBoardManager(queue.NewInMemoryQueue[string](10))
	repo.On("ListBoards", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := LoadBoards(context.Background(), repo, manager)
	assert.Error(t, err)
}
