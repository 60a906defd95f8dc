package state

import (
	"context"
	"errors"

	"github.com/cbodonnell/civboard/pkg/board"
)

// BoardManager provides shared access to the hosted boards.
// Implementations must be thread-safe.
type BoardManager interface {
	// Create adds a new default board of the given size and returns its ID.
	Create(ctx context.Context, size int) (string, error)
	// Import adds a copy of b under a new ID and marks it dirty.
	Import(ctx context.Context, b *board.Board) (string, error)
	// Restore adds a board loaded from storage without marking it dirty.
	Restore(ctx context.Context, id string, b *board.Board) error
	// View calls fn with read access to a board.
	View(ctx context.Context, id string, fn func(b *board.Board) error) error
	// Update calls fn with write access to a board. Changes are kept only if
	// fn returns nil.
	Update(ctx context.Context, id string, fn func(b *board.Board) error) error
	// Delete removes a board.
	Delete(ctx context.Context, id string) error
	// IDs returns the IDs of all boards in sorted order.
	IDs(ctx context.Context) []string
	// Snapshot returns a copy of a board and clears its dirty mark.
	Snapshot(ctx context.Context, id string) (*board.Board, error)
	// MarkDirty queues a board for saving, or for removal from storage when
	// it no longer exists.
	MarkDirty(ctx context.Context, id string)
	// TakePending returns and forgets the IDs that changed while the queue
	// was full.
	TakePending(ctx context.Context) []string
}

type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return "board not found: " + e.ID
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}
