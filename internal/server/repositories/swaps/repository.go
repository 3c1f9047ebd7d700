package swaps

import (
	"context"

	"skillswap/internal/server/models"
)

// Repository abstracts swap-request persistence.
type Repository interface {
	Create(ctx context.Context, req *models.SwapRequest) (*models.SwapRequest, error)
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	ListByRequester(ctx context.Context, userID string) ([]*models.SwapRequest, error)
	ListByTarget(ctx context.Context, userID string) ([]*models.SwapRequest, error)
	ListAll(ctx context.Context) ([]*models.SwapRequest, error)
	ListRecentCompleted(ctx context.Context, userID string, limit int) ([]*models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status models.SwapStatus) (int, error)
	Count(ctx context.Context) (int, error)
}
