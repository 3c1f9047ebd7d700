// Package api is the client's gateway to the SkillSwap REST backend. The
// Client interface exposes one method per server operation; the rest of the
// client never builds a URL or touches a token header itself.
package api

import (
	"context"
	"io"

	"skillswap/internal/client/models"
)

// RegisterInput is the JSON payload of POST /api/auth/register.
type RegisterInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Location      string   `json:"location,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  string   `json:"availability,omitempty"`
}

// SwapCreateInput is the JSON payload of POST /api/swap-requests.
type SwapCreateInput struct {
	TargetUserID   string `json:"target_user_id"`
	RequestedSkill string `json:"requested_skill"`
	OfferedSkill   string `json:"offered_skill"`
	Message        string `json:"message,omitempty"`
}

// RatingInput is the JSON payload of POST /api/ratings.
type RatingInput struct {
	SwapRequestID string `json:"swap_request_id"`
	RatedUserID   string `json:"rated_user_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// Client talks to the backend. SetToken installs the bearer token attached
// to every authenticated call; an empty token clears it.
//
// Errors: transport failures map to ErrUnavailable, HTTP 401 to
// ErrUnauthorized, and other HTTP errors carry the server's detail message.
type Client interface {
	SetToken(token string)

	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	ListUsers(ctx context.Context) ([]*models.User, error)
	SearchUsers(ctx context.Context, skill string) ([]*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UploadPhoto(ctx context.Context, filename, contentType string, body io.Reader) (string, error)

	CreateSwap(ctx context.Context, in SwapCreateInput) (*models.SwapRequest, error)
	ListOutgoing(ctx context.Context) ([]*models.SwapRequest, error)
	ListIncoming(ctx context.Context) ([]*models.SwapRequest, error)
	UpdateSwapStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	DeleteSwap(ctx context.Context, id string) error

	CreateRating(ctx context.Context, in RatingInput) (*models.Rating, error)
	ListRatings(ctx context.Context, userID string) ([]*models.Rating, error)
}
