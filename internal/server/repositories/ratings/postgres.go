package ratings

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

func (r *PostgresRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	query := `INSERT INTO ratings
		(id, swap_request_id, rater_id, rated_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, rating.ID, rating.SwapRequestID,
		rating.RaterID, rating.RatedUserID, rating.Rating, rating.Comment,
	).Scan(&rating.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rating, nil
}

func (r *PostgresRepository) GetBySwapAndRater(ctx context.Context, swapRequestID, raterID string) (*models.Rating, error) {
	query := `SELECT id, swap_request_id, rater_id, rated_user_id, rating, comment, created_at
		FROM ratings WHERE swap_request_id = $1 AND rater_id = $2`

	rating := &models.Rating{}
	err := r.db.QueryRowContext(ctx, query, swapRequestID, raterID).Scan(
		&rating.ID, &rating.SwapRequestID, &rating.RaterID, &rating.RatedUserID,
		&rating.Rating, &rating.Comment, &rating.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rating, nil
}

func (r *PostgresRepository) ListByRatedUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	query := `SELECT id, swap_request_id, rater_id, rated_user_id, rating, comment, created_at
		FROM ratings WHERE rated_user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Rating, 0)
	for rows.Next() {
		rating := &models.Rating{}
		err := rows.Scan(&rating.ID, &rating.SwapRequestID, &rating.RaterID,
			&rating.RatedUserID, &rating.Rating, &rating.Comment, &rating.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) AverageForUser(ctx context.Context, userID string) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE rated_user_id = $1`,
		userID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return avg, nil
}
