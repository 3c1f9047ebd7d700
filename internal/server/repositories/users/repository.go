package users

import (
	"context"

	"skillswap/internal/server/models"
)

// Repository abstracts user persistence. Postgres is the production
// implementation; tests use fakes.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListPublic(ctx context.Context) ([]*models.User, error)
	SearchBySkill(ctx context.Context, skill string) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	SetPhoto(ctx context.Context, id, photoURL string) error
	SetBanned(ctx context.Context, id string, banned bool) error
	SetRatingAverage(ctx context.Context, id string, avg float64) error
	IncrementTotalSwaps(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
