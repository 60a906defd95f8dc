package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository stores boards in Postgres over a single connection.
// A pgx.Conn is not safe for concurrent use, so calls are expected to come
// from one goroutine at a time (the save worker, or startup).
type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	err = applyMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := conn.Exec(ctx, q)
		return err
	})
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveBoard(ctx context.Context, b *models.Board) error {
	now := time.Now().UnixMilli()
	q := `
	INSERT INTO boards (board_id, size, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)
	ON CONFLICT (board_id) DO UPDATE SET size = $2, data = $3, updated_at = $4;
	`
	_, err := r.conn.Exec(ctx, q, b.ID, b.Size, b.Data, now)
	if err != nil {
		return fmt.Errorf("failed to save board: %v", err)
	}
	b.UpdatedAt = now

	return nil
}

func (r *PostgresRepository) LoadBoard(ctx context.Context, id string) (*models.Board, error) {
	q := `
	SELECT board_id::text, size, data, updated_at FROM boards WHERE board_id = $1;
	`
	b := &models.Board{}
	if err := r.conn.QueryRow(ctx, q, id).Scan(&b.ID, &b.Size, &b.Data, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan board: %v", err)
	}

	return b, nil
}

func (r *PostgresRepository) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.conn.Query(ctx, "SELECT board_id::text, size, data, updated_at FROM boards ORDER BY board_id")
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

func (r *PostgresRepository) DeleteBoard(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM boards WHERE board_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}

	return nil
}
