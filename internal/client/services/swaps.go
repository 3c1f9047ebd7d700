package services

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
	"skillswap/internal/client/session"
)

// ErrSkillRequired is returned by Create before any network call when
// either skill field is blank.
var ErrSkillRequired = errors.New("both skills are required")

// Action is something the viewer may do to a swap request.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// SwapService drives the swap-request lifecycle from the client side.
// Mutations follow a refresh-after-mutate policy: the server applies the
// change, then the relevant list is re-fetched so the caller always renders
// server truth.
type SwapService struct {
	api     api.Client
	session *session.Store
}

func NewSwapService(client api.Client, s *session.Store) *SwapService {
	return &SwapService{api: client, session: s}
}

// Create opens a request towards targetUserID. Blank skills fail locally.
func (s *SwapService) Create(ctx context.Context, targetUserID, requestedSkill, offeredSkill, message string) (*models.SwapRequest, error) {
	requestedSkill = strings.TrimSpace(requestedSkill)
	offeredSkill = strings.TrimSpace(offeredSkill)
	if requestedSkill == "" || offeredSkill == "" {
		return nil, ErrSkillRequired
	}

	return s.api.CreateSwap(ctx, api.SwapCreateInput{
		TargetUserID:   targetUserID,
		RequestedSkill: requestedSkill,
		OfferedSkill:   offeredSkill,
		Message:        strings.TrimSpace(message),
	})
}

// ListOutgoing returns a fresh snapshot of the requests the user sent.
func (s *SwapService) ListOutgoing(ctx context.Context) ([]*models.SwapRequest, error) {
	return s.api.ListOutgoing(ctx)
}

// ListIncoming returns a fresh snapshot of the requests aimed at the user.
func (s *SwapService) ListIncoming(ctx context.Context) ([]*models.SwapRequest, error) {
	return s.api.ListIncoming(ctx)
}

// Accept moves an incoming request to accepted and returns the refreshed
// incoming list.
func (s *SwapService) Accept(ctx context.Context, id string) ([]*models.SwapRequest, error) {
	return s.mutateIncoming(ctx, id, models.SwapStatusAccepted)
}

// Reject moves an incoming request to rejected and returns the refreshed
// incoming list.
func (s *SwapService) Reject(ctx context.Context, id string) ([]*models.SwapRequest, error) {
	return s.mutateIncoming(ctx, id, models.SwapStatusRejected)
}

func (s *SwapService) mutateIncoming(ctx context.Context, id string, status models.SwapStatus) ([]*models.SwapRequest, error) {
	if _, err := s.api.UpdateSwapStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.api.ListIncoming(ctx)
}

// Complete marks an accepted request completed. Both the outgoing and
// incoming views may show it, so the refreshed lists of both are returned.
func (s *SwapService) Complete(ctx context.Context, id string) (outgoing, incoming []*models.SwapRequest, err error) {
	if _, err = s.api.UpdateSwapStatus(ctx, id, models.SwapStatusCompleted); err != nil {
		return nil, nil, err
	}
	if outgoing, err = s.api.ListOutgoing(ctx); err != nil {
		return nil, nil, err
	}
	if incoming, err = s.api.ListIncoming(ctx); err != nil {
		return nil, nil, err
	}
	return outgoing, incoming, nil
}

// Cancel withdraws a pending outgoing request and returns the refreshed
// outgoing list.
func (s *SwapService) Cancel(ctx context.Context, id string) ([]*models.SwapRequest, error) {
	if err := s.api.DeleteSwap(ctx, id); err != nil {
		return nil, err
	}
	return s.api.ListOutgoing(ctx)
}

// AllowedActions returns exactly the actions the viewer may take on req.
//
//	pending   target:     accept, reject
//	pending   requester:  cancel
//	accepted  either:     complete
//	terminal  anyone:     none
func AllowedActions(req *models.SwapRequest, viewerID string) []Action {
	switch req.Status {
	case models.SwapStatusPending:
		if req.TargetUserID == viewerID {
			return []Action{ActionAccept, ActionReject}
		}
		if req.RequesterID == viewerID {
			return []Action{ActionCancel}
		}
	case models.SwapStatusAccepted:
		if req.RequesterID == viewerID || req.TargetUserID == viewerID {
			return []Action{ActionComplete}
		}
	}
	return nil
}
