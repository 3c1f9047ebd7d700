package swaps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap/internal/common"
	"skillswap/internal/dbx"
	"skillswap/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const swapColumns = `id, requester_id, target_user_id, requested_skill,
	offered_skill, message, status, created_at, updated_at`

func scanSwap(row interface{ Scan(dest ...any) error }) (*models.SwapRequest, error) {
	req := &models.SwapRequest{}
	err := row.Scan(&req.ID, &req.RequesterID, &req.TargetUserID,
		&req.RequestedSkill, &req.OfferedSkill, &req.Message, &req.Status,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req *models.SwapRequest) (*models.SwapRequest, error) {
	query := `INSERT INTO swap_requests
		(id, requester_id, target_user_id, requested_skill, offered_skill, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, req.ID, req.RequesterID,
		req.TargetUserID, req.RequestedSkill, req.OfferedSkill, req.Message,
		req.Status).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = $1`

	req, err := scanSwap(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) querySwaps(ctx context.Context, query string, args ...any) ([]*models.SwapRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SwapRequest, 0)
	for rows.Next() {
		req, err := scanSwap(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListByRequester(ctx context.Context, userID string) ([]*models.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests
		WHERE requester_id = $1 ORDER BY created_at DESC`
	return r.querySwaps(ctx, query, userID)
}

func (r *PostgresRepository) ListByTarget(ctx context.Context, userID string) ([]*models.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests
		WHERE target_user_id = $1 ORDER BY created_at DESC`
	return r.querySwaps(ctx, query, userID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests ORDER BY created_at DESC`
	return r.querySwaps(ctx, query)
}

func (r *PostgresRepository) ListRecentCompleted(ctx context.Context, userID string, limit int) ([]*models.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests
		WHERE status = 'completed' AND (requester_id = $1 OR target_user_id = $1)
		ORDER BY updated_at DESC
		LIMIT $2`
	return r.querySwaps(ctx, query, userID, limit)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	query := `UPDATE swap_requests SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + swapColumns

	req, err := scanSwap(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM swap_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status models.SwapStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM swap_requests WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM swap_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
