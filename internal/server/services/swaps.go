package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"skillswap/internal/common"
	"skillswap/internal/dbx"
	"skillswap/internal/server/models"
	"skillswap/internal/server/repositories"
)

// SwapCreateInput carries the fields accepted when opening a swap request.
type SwapCreateInput struct {
	TargetUserID   string `json:"target_user_id"`
	RequestedSkill string `json:"requested_skill"`
	OfferedSkill   string `json:"offered_skill"`
	Message        string `json:"message"`
}

// SwapService owns the swap-request lifecycle. It is the authority of truth
// for the state machine: handlers pass through user intent and this service
// decides whether a transition is legal and who may trigger it.
type SwapService struct {
	db    *sql.DB
	repos repositories.Manager
}

func NewSwapService(db *sql.DB, m repositories.Manager) *SwapService {
	return &SwapService{db: db, repos: m}
}

// Create opens a pending request from requesterID. The target must exist
// and differ from the requester; both skill labels must be non-empty.
func (s *SwapService) Create(ctx context.Context, requesterID string, in SwapCreateInput) (*models.SwapRequest, error) {
	if in.RequestedSkill == "" || in.OfferedSkill == "" {
		return nil, common.ErrValidation
	}
	if in.TargetUserID == requesterID {
		return nil, common.ErrSelfSwap
	}

	if _, err := s.repos.Users(s.db).GetByID(ctx, in.TargetUserID); err != nil {
		return nil, err
	}

	req := &models.SwapRequest{
		ID:             uuid.NewString(),
		RequesterID:    requesterID,
		TargetUserID:   in.TargetUserID,
		RequestedSkill: in.RequestedSkill,
		OfferedSkill:   in.OfferedSkill,
		Message:        in.Message,
		Status:         models.SwapStatusPending,
	}

	created, err := s.repos.Swaps(s.db).Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error creating swap request: %w", err)
	}
	return created, nil
}

// ListOutgoing returns the requests where userID is the requester.
func (s *SwapService) ListOutgoing(ctx context.Context, userID string) ([]*models.SwapRequest, error) {
	return s.repos.Swaps(s.db).ListByRequester(ctx, userID)
}

// ListIncoming returns the requests where userID is the target.
func (s *SwapService) ListIncoming(ctx context.Context, userID string) ([]*models.SwapRequest, error) {
	return s.repos.Swaps(s.db).ListByTarget(ctx, userID)
}

// ListAll returns every swap request. Admin only.
func (s *SwapService) ListAll(ctx context.Context) ([]*models.SwapRequest, error) {
	return s.repos.Swaps(s.db).ListAll(ctx)
}

// statusReachable reports whether next can follow from, for any actor.
// Used to distinguish an impossible transition (conflict) from a transition
// the caller is simply not allowed to trigger (forbidden).
func statusReachable(from, next models.SwapStatus) bool {
	switch from {
	case models.SwapStatusPending:
		return next == models.SwapStatusAccepted ||
			next == models.SwapStatusRejected ||
			next == models.SwapStatusCancelled
	case models.SwapStatusAccepted:
		return next == models.SwapStatusCompleted
	}
	return false
}

// UpdateStatus applies a transition requested by userID. Completing a swap
// also increments both parties' swap counters, atomically with the status
// change.
func (s *SwapService) UpdateStatus(ctx context.Context, userID, requestID string, next models.SwapStatus) (*models.SwapRequest, error) {
	if !next.Valid() || next == models.SwapStatusPending {
		return nil, common.ErrValidation
	}

	req, err := s.repos.Swaps(s.db).GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !statusReachable(req.Status, next) {
		return nil, common.ErrIllegalTransition
	}
	if !req.CanTransition(next, userID) {
		return nil, common.ErrForbidden
	}

	if next != models.SwapStatusCompleted {
		return s.repos.Swaps(s.db).UpdateStatus(ctx, requestID, next)
	}

	var updated *models.SwapRequest
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		updated, txErr = s.repos.Swaps(tx).UpdateStatus(ctx, requestID, next)
		if txErr != nil {
			return txErr
		}

		userRepo := s.repos.Users(tx)
		if txErr = userRepo.IncrementTotalSwaps(ctx, req.RequesterID); txErr != nil {
			return txErr
		}
		return userRepo.IncrementTotalSwaps(ctx, req.TargetUserID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a request. Only the requester may delete, and only while
// the request is still pending.
func (s *SwapService) Delete(ctx context.Context, userID, requestID string) error {
	req, err := s.repos.Swaps(s.db).GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if req.RequesterID != userID {
		return common.ErrForbidden
	}
	if req.Status != models.SwapStatusPending {
		return common.ErrIllegalTransition
	}

	if err := s.repos.Swaps(s.db).Delete(ctx, requestID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("error deleting swap request: %w", err)
	}
	return nil
}
