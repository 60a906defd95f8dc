package workers

import (
	"context"
	"fmt"

	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/repositories"
	"github.com/cbodonnell/civboard/pkg/state"
)

// LoadBoards restores every stored board into the manager. Records that no
// longer decode are logged and skipped. It returns the number of boards
// restored.
func LoadBoards(ctx context.Context, repository repositories.Repository, manager state.BoardManager) (int, error) {
	records, err := repository.ListBoards(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list boards: %w", err)
	}

	n := 0
	for _, record := range records {
		b, err := board.ParseBoard(record.Data)
		if err != nil {
			log.Error("Skipping stored board %s: %v", record.ID, err)
			continue
		}
		if err := manager.Restore(ctx, record.ID, b); err != nil {
			log.Error("Skipping stored board %s: %v", record.ID, err)
			continue
		}
		n++
	}
	return n, nil
}
