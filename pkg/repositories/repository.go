package repositories

import (
	"context"

	"github.com/cbodonnell/civboard/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveBoard inserts or replaces a board.
	SaveBoard(ctx context.Context, b *models.Board) error
	LoadBoard(ctx context.Context, id string) (*models.Board, error)
	// ListBoards returns every stored board ordered by ID.
	ListBoards(ctx context.Context) ([]*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error
}
