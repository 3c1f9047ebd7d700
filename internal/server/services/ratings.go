package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"skillswap/internal/common"
	"skillswap/internal/dbx"
	"skillswap/internal/server/models"
	"skillswap/internal/server/repositories"
)

// RatingCreateInput carries the fields accepted when rating a swap partner.
type RatingCreateInput struct {
	SwapRequestID string `json:"swap_request_id"`
	RatedUserID   string `json:"rated_user_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// RatingService records post-swap feedback and keeps each user's rating
// average in sync.
type RatingService struct {
	db    *sql.DB
	repos repositories.Manager
}

func NewRatingService(db *sql.DB, m repositories.Manager) *RatingService {
	return &RatingService{db: db, repos: m}
}

// Create stores a rating for a completed swap the rater took part in.
// The rated user's average is recomputed in the same transaction.
func (s *RatingService) Create(ctx context.Context, raterID string, in RatingCreateInput) (*models.Rating, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, common.ErrValidation
	}

	swap, err := s.repos.Swaps(s.db).GetByID(ctx, in.SwapRequestID)
	if err != nil {
		return nil, err
	}

	if swap.Status != models.SwapStatusCompleted {
		return nil, common.ErrSwapNotCompleted
	}
	if raterID != swap.RequesterID && raterID != swap.TargetUserID {
		return nil, common.ErrNotSwapParticipant
	}

	if _, err := s.repos.Ratings(s.db).GetBySwapAndRater(ctx, in.SwapRequestID, raterID); err == nil {
		return nil, common.ErrDuplicateRating
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	rating := &models.Rating{
		ID:            uuid.NewString(),
		SwapRequestID: in.SwapRequestID,
		RaterID:       raterID,
		RatedUserID:   in.RatedUserID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ratingRepo := s.repos.Ratings(tx)

		if _, txErr := ratingRepo.Create(ctx, rating); txErr != nil {
			return txErr
		}

		avg, txErr := ratingRepo.AverageForUser(ctx, in.RatedUserID)
		if txErr != nil {
			return txErr
		}

		// Stored rounded to one decimal, matching what profiles display.
		rounded := math.Round(avg*10) / 10
		return s.repos.Users(tx).SetRatingAverage(ctx, in.RatedUserID, rounded)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating rating: %w", err)
	}

	return rating, nil
}

// ListForUser returns the ratings received by userID.
func (s *RatingService) ListForUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	return s.repos.Ratings(s.db).ListByRatedUser(ctx, userID)
}
