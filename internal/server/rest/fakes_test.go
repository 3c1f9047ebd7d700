package rest

import (
	"context"
	"sort"
	"time"

	"skillswap/internal/common"
	"skillswap/internal/dbx"
	"skillswap/internal/server/models"
	"skillswap/internal/server/repositories/ratings"
	"skillswap/internal/server/repositories/swaps"
	"skillswap/internal/server/repositories/users"
)

type fakeUserRepo struct {
	byID map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.CreatedAt = time.Now()
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) sorted(filter func(*models.User) bool) []*models.User {
	result := make([]*models.User, 0)
	for _, u := range r.byID {
		if filter(u) {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *fakeUserRepo) ListPublic(context.Context) ([]*models.User, error) {
	return r.sorted(func(u *models.User) bool { return u.IsPublic && !u.IsBanned }), nil
}

func (r *fakeUserRepo) SearchBySkill(_ context.Context, skill string) ([]*models.User, error) {
	return r.sorted(func(u *models.User) bool {
		if !u.IsPublic || u.IsBanned {
			return false
		}
		for _, s := range u.SkillsOffered {
			if s == skill {
				return true
			}
		}
		return false
	}), nil
}

func (r *fakeUserRepo) ListAll(context.Context) ([]*models.User, error) {
	return r.sorted(func(*models.User) bool { return true }), nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) (*models.User, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return nil, common.ErrNotFound
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) SetPhoto(_ context.Context, id, url string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.ProfilePhoto = url
	return nil
}

func (r *fakeUserRepo) SetBanned(_ context.Context, id string, banned bool) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.IsBanned = banned
	return nil
}

func (r *fakeUserRepo) SetRatingAverage(_ context.Context, id string, avg float64) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.RatingAverage = avg
	return nil
}

func (r *fakeUserRepo) IncrementTotalSwaps(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.TotalSwaps++
	return nil
}

func (r *fakeUserRepo) Count(context.Context) (int, error) {
	return len(r.byID), nil
}

type fakeSwapRepo struct {
	byID map[string]*models.SwapRequest
}

func newFakeSwapRepo() *fakeSwapRepo {
	return &fakeSwapRepo{byID: make(map[string]*models.SwapRequest)}
}

func (r *fakeSwapRepo) Create(_ context.Context, req *models.SwapRequest) (*models.SwapRequest, error) {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	r.byID[req.ID] = req
	return req, nil
}

func (r *fakeSwapRepo) GetByID(_ context.Context, id string) (*models.SwapRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return req, nil
}

func (r *fakeSwapRepo) list(filter func(*models.SwapRequest) bool) []*models.SwapRequest {
	result := make([]*models.SwapRequest, 0)
	for _, req := range r.byID {
		if filter(req) {
			result = append(result, req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *fakeSwapRepo) ListByRequester(_ context.Context, userID string) ([]*models.SwapRequest, error) {
	return r.list(func(req *models.SwapRequest) bool { return req.RequesterID == userID }), nil
}

func (r *fakeSwapRepo) ListByTarget(_ context.Context, userID string) ([]*models.SwapRequest, error) {
	return r.list(func(req *models.SwapRequest) bool { return req.TargetUserID == userID }), nil
}

func (r *fakeSwapRepo) ListAll(context.Context) ([]*models.SwapRequest, error) {
	return r.list(func(*models.SwapRequest) bool { return true }), nil
}

func (r *fakeSwapRepo) ListRecentCompleted(_ context.Context, userID string, limit int) ([]*models.SwapRequest, error) {
	result := r.list(func(req *models.SwapRequest) bool {
		return req.Status == models.SwapStatusCompleted &&
			(req.RequesterID == userID || req.TargetUserID == userID)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeSwapRepo) UpdateStatus(_ context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return req, nil
}

func (r *fakeSwapRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeSwapRepo) CountByStatus(_ context.Context, status models.SwapStatus) (int, error) {
	return len(r.list(func(req *models.SwapRequest) bool { return req.Status == status })), nil
}

func (r *fakeSwapRepo) Count(context.Context) (int, error) {
	return len(r.byID), nil
}

type fakeRatingRepo struct {
	byID map[string]*models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{byID: make(map[string]*models.Rating)}
}

func (r *fakeRatingRepo) Create(_ context.Context, rating *models.Rating) (*models.Rating, error) {
	rating.CreatedAt = time.Now()
	r.byID[rating.ID] = rating
	return rating, nil
}

func (r *fakeRatingRepo) GetBySwapAndRater(_ context.Context, swapID, raterID string) (*models.Rating, error) {
	for _, rating := range r.byID {
		if rating.SwapRequestID == swapID && rating.RaterID == raterID {
			return rating, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeRatingRepo) ListByRatedUser(_ context.Context, userID string) ([]*models.Rating, error) {
	result := make([]*models.Rating, 0)
	for _, rating := range r.byID {
		if rating.RatedUserID == userID {
			result = append(result, rating)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeRatingRepo) AverageForUser(_ context.Context, userID string) (float64, error) {
	sum, n := 0, 0
	for _, rating := range r.byID {
		if rating.RatedUserID == userID {
			sum += rating.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

type fakeManager struct {
	users   *fakeUserRepo
	swaps   *fakeSwapRepo
	ratings *fakeRatingRepo
}

func (m *fakeManager) Users(dbx.DBTX) users.Repository     { return m.users }
func (m *fakeManager) Swaps(dbx.DBTX) swaps.Repository     { return m.swaps }
func (m *fakeManager) Ratings(dbx.DBTX) ratings.Repository { return m.ratings }
