package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/common"
	"skillswap/internal/server/models"
)

const (
	requesterID = "user-a"
	targetID    = "user-b"
	strangerID  = "user-c"
)

func newSwapFixture(t *testing.T, reqs ...*models.SwapRequest) (*SwapService, *fakeManager) {
	t.Helper()
	m := &fakeManager{
		users: newFakeUserRepo(
			&models.User{ID: requesterID, Name: "A", Email: "a@example.com", IsPublic: true},
			&models.User{ID: targetID, Name: "B", Email: "b@example.com", IsPublic: true},
			&models.User{ID: strangerID, Name: "C", Email: "c@example.com", IsPublic: true},
		),
		swaps:   newFakeSwapRepo(reqs...),
		ratings: newFakeRatingRepo(),
	}
	return NewSwapService(openTestDB(t), m), m
}

func pendingRequest() *models.SwapRequest {
	return &models.SwapRequest{
		ID:             "swap-1",
		RequesterID:    requesterID,
		TargetUserID:   targetID,
		RequestedSkill: "Guitar",
		OfferedSkill:   "Spanish",
		Status:         models.SwapStatusPending,
	}
}

func TestSwapService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending request", func(t *testing.T) {
		svc, m := newSwapFixture(t)

		req, err := svc.Create(ctx, requesterID, SwapCreateInput{
			TargetUserID:   targetID,
			RequestedSkill: "Guitar",
			OfferedSkill:   "Spanish",
			Message:        "hi!",
		})
		require.NoError(t, err)

		assert.Equal(t, models.SwapStatusPending, req.Status)
		assert.Equal(t, requesterID, req.RequesterID)
		assert.NotEmpty(t, req.ID)

		stored, err := m.swaps.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "Guitar", stored.RequestedSkill)
	})

	t.Run("rejects empty skills", func(t *testing.T) {
		svc, _ := newSwapFixture(t)

		_, err := svc.Create(ctx, requesterID, SwapCreateInput{TargetUserID: targetID, OfferedSkill: "Spanish"})
		assert.ErrorIs(t, err, common.ErrValidation)

		_, err = svc.Create(ctx, requesterID, SwapCreateInput{TargetUserID: targetID, RequestedSkill: "Guitar"})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("rejects self target", func(t *testing.T) {
		svc, _ := newSwapFixture(t)

		_, err := svc.Create(ctx, requesterID, SwapCreateInput{
			TargetUserID: requesterID, RequestedSkill: "Guitar", OfferedSkill: "Spanish",
		})
		assert.ErrorIs(t, err, common.ErrSelfSwap)
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		svc, _ := newSwapFixture(t)

		_, err := svc.Create(ctx, requesterID, SwapCreateInput{
			TargetUserID: "ghost", RequestedSkill: "Guitar", OfferedSkill: "Spanish",
		})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSwapService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("target accepts pending", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		updated, err := svc.UpdateStatus(ctx, targetID, "swap-1", models.SwapStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.SwapStatusAccepted, updated.Status)
	})

	t.Run("requester cannot accept", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		_, err := svc.UpdateStatus(ctx, requesterID, "swap-1", models.SwapStatusAccepted)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("stranger cannot reject", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		_, err := svc.UpdateStatus(ctx, strangerID, "swap-1", models.SwapStatusRejected)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("cannot complete while pending", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		_, err := svc.UpdateStatus(ctx, targetID, "swap-1", models.SwapStatusCompleted)
		assert.ErrorIs(t, err, common.ErrIllegalTransition)
	})

	t.Run("no transitions out of terminal states", func(t *testing.T) {
		for _, status := range []models.SwapStatus{
			models.SwapStatusRejected, models.SwapStatusCompleted, models.SwapStatusCancelled,
		} {
			req := pendingRequest()
			req.Status = status
			svc, _ := newSwapFixture(t, req)

			_, err := svc.UpdateStatus(ctx, targetID, "swap-1", models.SwapStatusAccepted)
			assert.ErrorIs(t, err, common.ErrIllegalTransition, "from %s", status)
		}
	})

	t.Run("completion increments both swap counters", func(t *testing.T) {
		req := pendingRequest()
		req.Status = models.SwapStatusAccepted
		svc, m := newSwapFixture(t, req)

		updated, err := svc.UpdateStatus(ctx, requesterID, "swap-1", models.SwapStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.SwapStatusCompleted, updated.Status)

		a, _ := m.users.GetByID(ctx, requesterID)
		b, _ := m.users.GetByID(ctx, targetID)
		assert.Equal(t, 1, a.TotalSwaps)
		assert.Equal(t, 1, b.TotalSwaps)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		_, err := svc.UpdateStatus(ctx, targetID, "swap-1", models.SwapStatus("archived"))
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newSwapFixture(t)

		_, err := svc.UpdateStatus(ctx, targetID, "ghost", models.SwapStatusAccepted)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSwapService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("requester deletes pending", func(t *testing.T) {
		svc, m := newSwapFixture(t, pendingRequest())

		require.NoError(t, svc.Delete(ctx, requesterID, "swap-1"))

		_, err := m.swaps.GetByID(ctx, "swap-1")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("target cannot delete", func(t *testing.T) {
		svc, _ := newSwapFixture(t, pendingRequest())

		assert.ErrorIs(t, svc.Delete(ctx, targetID, "swap-1"), common.ErrForbidden)
	})

	t.Run("cannot delete accepted", func(t *testing.T) {
		req := pendingRequest()
		req.Status = models.SwapStatusAccepted
		svc, _ := newSwapFixture(t, req)

		assert.ErrorIs(t, svc.Delete(ctx, requesterID, "swap-1"), common.ErrIllegalTransition)
	})
}

func TestSwapService_Lists(t *testing.T) {
	ctx := context.Background()

	outgoing := pendingRequest()
	incoming := &models.SwapRequest{
		ID: "swap-2", RequesterID: targetID, TargetUserID: requesterID,
		RequestedSkill: "Cooking", OfferedSkill: "Chess",
		Status: models.SwapStatusPending,
	}
	svc, _ := newSwapFixture(t, outgoing, incoming)

	out, err := svc.ListOutgoing(ctx, requesterID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "swap-1", out[0].ID)

	in, err := svc.ListIncoming(ctx, requesterID)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, "swap-2", in[0].ID)
}
