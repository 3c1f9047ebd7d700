// Package apitest provides a programmable in-memory api.Client for tests.
package apitest

import (
	"context"
	"io"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
)

// Fake implements api.Client. Each operation delegates to the matching
// function field when set and fails the zero-value way otherwise. Calls
// tracks how many times each operation ran, keyed by method name.
type Fake struct {
	Token string
	Calls map[string]int

	LoginFn            func(ctx context.Context, email, password string) (string, error)
	RegisterFn         func(ctx context.Context, in api.RegisterInput) (string, error)
	CurrentUserFn      func(ctx context.Context) (*models.User, error)
	ListUsersFn        func(ctx context.Context) ([]*models.User, error)
	SearchUsersFn      func(ctx context.Context, skill string) ([]*models.User, error)
	GetProfileFn       func(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfileFn    func(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UploadPhotoFn      func(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	CreateSwapFn       func(ctx context.Context, in api.SwapCreateInput) (*models.SwapRequest, error)
	ListOutgoingFn     func(ctx context.Context) ([]*models.SwapRequest, error)
	ListIncomingFn     func(ctx context.Context) ([]*models.SwapRequest, error)
	UpdateSwapStatusFn func(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	DeleteSwapFn       func(ctx context.Context, id string) error
	CreateRatingFn     func(ctx context.Context, in api.RatingInput) (*models.Rating, error)
	ListRatingsFn      func(ctx context.Context, userID string) ([]*models.Rating, error)
}

var _ api.Client = (*Fake)(nil)

func New() *Fake {
	return &Fake{Calls: make(map[string]int)}
}

func (f *Fake) record(name string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[name]++
}

func (f *Fake) SetToken(token string) {
	f.record("SetToken")
	f.Token = token
}

func (f *Fake) Login(ctx context.Context, email, password string) (string, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return "", api.ErrUnauthorized
	}
	return f.LoginFn(ctx, email, password)
}

func (f *Fake) Register(ctx context.Context, in api.RegisterInput) (string, error) {
	f.record("Register")
	if f.RegisterFn == nil {
		return "", api.ErrUnavailable
	}
	return f.RegisterFn(ctx, in)
}

func (f *Fake) CurrentUser(ctx context.Context) (*models.User, error) {
	f.record("CurrentUser")
	if f.CurrentUserFn == nil {
		return nil, api.ErrUnauthorized
	}
	return f.CurrentUserFn(ctx)
}

func (f *Fake) ListUsers(ctx context.Context) ([]*models.User, error) {
	f.record("ListUsers")
	if f.ListUsersFn == nil {
		return nil, nil
	}
	return f.ListUsersFn(ctx)
}

func (f *Fake) SearchUsers(ctx context.Context, skill string) ([]*models.User, error) {
	f.record("SearchUsers")
	if f.SearchUsersFn == nil {
		return nil, nil
	}
	return f.SearchUsersFn(ctx, skill)
}

func (f *Fake) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	f.record("GetProfile")
	if f.GetProfileFn == nil {
		return nil, api.ErrUnavailable
	}
	return f.GetProfileFn(ctx, userID)
}

func (f *Fake) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.record("UpdateProfile")
	if f.UpdateProfileFn == nil {
		return nil, api.ErrUnavailable
	}
	return f.UpdateProfileFn(ctx, upd)
}

func (f *Fake) UploadPhoto(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	f.record("UploadPhoto")
	if f.UploadPhotoFn == nil {
		return "", api.ErrUnavailable
	}
	return f.UploadPhotoFn(ctx, filename, contentType, body)
}

func (f *Fake) CreateSwap(ctx context.Context, in api.SwapCreateInput) (*models.SwapRequest, error) {
	f.record("CreateSwap")
	if f.CreateSwapFn == nil {
		return nil, api.ErrUnavailable
	}
	return f.CreateSwapFn(ctx, in)
}

func (f *Fake) ListOutgoing(ctx context.Context) ([]*models.SwapRequest, error) {
	f.record("ListOutgoing")
	if f.ListOutgoingFn == nil {
		return nil, nil
	}
	return f.ListOutgoingFn(ctx)
}

func (f *Fake) ListIncoming(ctx context.Context) ([]*models.SwapRequest, error) {
	f.record("ListIncoming")
	if f.ListIncomingFn == nil {
		return nil, nil
	}
	return f.ListIncomingFn(ctx)
}

func (f *Fake) UpdateSwapStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	f.record("UpdateSwapStatus")
	if f.UpdateSwapStatusFn == nil {
		return nil, api.ErrUnavailable
	}
	return f.UpdateSwapStatusFn(ctx, id, status)
}

func (f *Fake) DeleteSwap(ctx context.Context, id string) error {
	f.record("DeleteSwap")
	if f.DeleteSwapFn == nil {
		return api.ErrUnavailable
	}
	return f.DeleteSwapFn(ctx, id)
}

func (f *Fake) CreateRating(ctx context.Context, in api.RatingInput) (*models.Rating, error) {
	f.record("CreateRating")
	if f.CreateRatingFn == nil {
		return nil, api.ErrUnavailable
	}
	return f.CreateRatingFn(ctx, in)
}

func (f *Fake) ListRatings(ctx context.Context, userID string) ([]*models.Rating, error) {
	f.record("ListRatings")
	if f.ListRatingsFn == nil {
		return nil, nil
	}
	return f.ListRatingsFn(ctx, userID)
}
