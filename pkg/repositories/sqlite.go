package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/civboard/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	err = applyMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := db.ExecContext(ctx, q)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveBoard(ctx context.Context, b *models.Board) error {
	now := time.Now().UnixMilli()
	q := `
	INSERT INTO boards (board_id, size, data, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (board_id) DO UPDATE SET size = excluded.size, data = excluded.data, updated_at = excluded.updated_at;
	`
	_, err := r.db.ExecContext(ctx, q, b.ID, b.Size, b.Data, now, now)
	if err != nil {
		return fmt.Errorf("failed to save board: %v", err)
	}
	b.UpdatedAt = now

	return nil
}

func (r *SQLiteRepository) LoadBoard(ctx context.Context, id string) (*models.Board, error) {
	q := `
	SELECT board_id, size, data, updated_at FROM boards WHERE board_id = ?;
	`
	b := &models.Board{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Size, &b.Data, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan board: %v", err)
	}

	return b, nil
}

func (r *SQLiteRepository) ListBoards(ctx context.Context) ([]*models.Board, error) {
	q := `
	SELECT board_id, size, data, updated_at FROM boards ORDER BY board_id;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %v", err)
	}
	defer rows.Close()

	boards := make([]*models.Board, 0)
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Size, &b.Data, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %v", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boards: %v", err)
	}

	return boards, nil
}

func (r *SQLiteRepository) DeleteBoard(ctx context.Context, id string) error {
	q := `
	DELETE FROM boards WHERE board_id = ?;
	`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %v", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if n == 0 {
		return &ErrNotFound{}
	}

	return nil
}
