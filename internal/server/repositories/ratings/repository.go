package ratings

import (
	"context"

	"skillswap/internal/server/models"
)

// Repository abstracts rating persistence.
type Repository interface {
	Create(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	GetBySwapAndRater(ctx context.Context, swapRequestID, raterID string) (*models.Rating, error)
	ListByRatedUser(ctx context.Context, userID string) ([]*models.Rating, error)
	AverageForUser(ctx context.Context, userID string) (float64, error)
}
