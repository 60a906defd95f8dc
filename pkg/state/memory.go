package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/queue"
	"github.com/google/uuid"
)

type boardEntry struct {
	board *board.Board
	dirty bool
}

// InMemoryBoardManager keeps boards in memory and reports changed boards by
// pushing their IDs onto a queue. An ID is queued at most once until the
// board is read back with Snapshot. Deleted boards are queued as well so the
// consumer can remove them from storage. IDs that do not fit in the queue are
// held until the consumer collects them with TakePending.
type InMemoryBoardManager struct {
	lock    sync.RWMutex
	boards  map[string]*boardEntry
	dirty   queue.Queue[string]
	pending map[string]bool
}

func NewInMemoryBoardManager(dirty queue.Queue[string]) *InMemoryBoardManager {
	return &InMemoryBoardManager{
		boards:  make(map[string]*boardEntry),
		dirty:   dirty,
		pending: make(map[string]bool),
	}
}

func (m *InMemoryBoardManager) Create(ctx context.Context, size int) (string, error) {
	b, err := board.NewWithSize(size)
	if err != nil {
		return "", err
	}
	return m.add(b), nil
}

func (m *InMemoryBoardManager) Import(ctx context.Context, b *board.Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("board is nil")
	}
	return m.add(b.Clone()), nil
}

func (m *InMemoryBoardManager) add(b *board.Board) string {
	m.lock.Lock()
	defer m.lock.Unlock()

	id := uuid.NewString()
	entry := &boardEntry{board: b}
	m.boards[id] = entry
	m.markDirtyLocked(id, entry)
	return id
}

func (m *InMemoryBoardManager) Restore(ctx context.Context, id string, b *board.Board) error {
	if b == nil {
		return fmt.Errorf("board is nil")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid board id %q: %w", id, err)
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.boards[id]; ok {
		return fmt.Errorf("board %s already exists", id)
	}
	m.boards[id] = &boardEntry{board: b.Clone()}
	return nil
}

func (m *InMemoryBoardManager) View(ctx context.Context, id string, fn func(b *board.Board) error) error {
	m.lock.RLock()
	defer m.lock.RUnlock()

	entry, ok := m.boards[id]
	if !ok {
		return &ErrNotFound{ID: id}
	}
	return fn(entry.board)
}

func (m *InMemoryBoardManager) Update(ctx context.Context, id string, fn func(b *board.Board) error) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.boards[id]
	if !ok {
		return &ErrNotFound{ID: id}
	}
	working := entry.board.Clone()
	if err := fn(working); err != nil {
		return err
	}
	if working.Equal(entry.board) {
		return nil
	}
	entry.board = working
	m.markDirtyLocked(id, entry)
	return nil
}

func (m *InMemoryBoardManager) Delete(ctx context.Context, id string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.boards[id]; !ok {
		return &ErrNotFound{ID: id}
	}
	delete(m.boards, id)
	m.enqueueLocked(id)
	return nil
}

func (m *InMemoryBoardManager) IDs(ctx context.Context) []string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	ids := make([]string, 0, len(m.boards))
	for id := range m.boards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *InMemoryBoardManager) Snapshot(ctx context.Context, id string) (*board.Board, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.boards[id]
	if !ok {
		return nil, &ErrNotFound{ID: id}
	}
	entry.dirty = false
	return entry.board.Clone(), nil
}

func (m *InMemoryBoardManager) MarkDirty(ctx context.Context, id string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.boards[id]
	if !ok {
		m.enqueueLocked(id)
		return
	}
	m.markDirtyLocked(id, entry)
}

func (m *InMemoryBoardManager) TakePending(ctx context.Context) []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	ids := make([]string, 0, len(m.pending))
	for id := range m.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	m.pending = make(map[string]bool)
	return ids
}

func (m *InMemoryBoardManager) markDirtyLocked(id string, entry *boardEntry) {
	if entry.dirty {
		return
	}
	m.enqueueLocked(id)
	entry.dirty = true
}

// enqueueLocked queues id for the consumer, or holds it as pending when the
// queue is full.
func (m *InMemoryBoardManager) enqueueLocked(id string) {
	if m.pending[id] {
		return
	}
	if err := m.dirty.Enqueue(id); err != nil {
		log.Warn("Dirty queue full, holding board %s as pending: %v", id, err)
		m.pending[id] = true
	}
}
