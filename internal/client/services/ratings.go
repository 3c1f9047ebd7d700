package services

import (
	"context"
	"errors"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
	"skillswap/internal/client/session"
)

// ErrRatingRange is returned locally for ratings outside 1..5.
var ErrRatingRange = errors.New("rating must be between 1 and 5")

// RatingService submits post-swap feedback.
type RatingService struct {
	api     api.Client
	session *session.Store
}

func NewRatingService(client api.Client, s *session.Store) *RatingService {
	return &RatingService{api: client, session: s}
}

// Rate scores the other participant of a completed swap. The rated user is
// derived from the request: whichever side is not the session user.
func (s *RatingService) Rate(ctx context.Context, req *models.SwapRequest, rating int, comment string) (*models.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingRange
	}

	self := s.session.CurrentUser()
	if self == nil {
		return nil, api.ErrUnauthorized
	}

	ratedID := req.RequesterID
	if ratedID == self.ID {
		ratedID = req.TargetUserID
	}

	return s.api.CreateRating(ctx, api.RatingInput{
		SwapRequestID: req.ID,
		RatedUserID:   ratedID,
		Rating:        rating,
		Comment:       comment,
	})
}

// ListForUser returns the ratings left for a user.
func (s *RatingService) ListForUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	return s.api.ListRatings(ctx, userID)
}
