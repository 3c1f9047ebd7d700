// Package services contains server-side business logic. This file implements
// UserService: registration, login, profile reads and updates, skill search,
// photo upload, and the admin surface.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/common"
	"skillswap/internal/server/auth"
	"skillswap/internal/server/cache"
	"skillswap/internal/server/config"
	"skillswap/internal/server/models"
	"skillswap/internal/server/photos"
	"skillswap/internal/server/repositories"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  string   `json:"availability"`
	IsPublic      *bool    `json:"is_public"`
}

// Stats is the aggregate snapshot served to administrators.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	TotalSwaps     int `json:"total_swaps"`
	PendingSwaps   int `json:"pending_swaps"`
	CompletedSwaps int `json:"completed_swaps"`
}

const recentSwapsLimit = 5

// UserService handles accounts: registration, login, profiles, directory,
// photo upload, and admin operations.
type UserService struct {
	db            *sql.DB
	repos         repositories.Manager
	cache         *cache.Cache
	photoStore    photos.Store
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(db *sql.DB, m repositories.Manager, c *cache.Cache, ps photos.Store, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repos:         m,
		cache:         c,
		photoStore:    ps,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account and returns an access token for it.
// A taken email yields common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", common.ErrValidation
	}

	repo := s.repos.Users(s.db)

	if _, err := repo.GetByEmail(ctx, in.Email); err == nil {
		return "", common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("email lookup error: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("password hash error: %w", err)
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	user := &models.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  hash,
		Location:      in.Location,
		Bio:           in.Bio,
		SkillsOffered: in.SkillsOffered,
		SkillsWanted:  in.SkillsWanted,
		Availability:  in.Availability,
		IsPublic:      isPublic,
		Role:          common.RoleUser,
	}

	if _, err := repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	s.cache.InvalidateUsers(ctx)

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

// Login verifies credentials and returns a fresh access token. Unknown
// emails and wrong passwords are indistinguishable (common.ErrUnauthorized);
// banned accounts yield common.ErrAccountBanned.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrUnauthorized
	}
	if user.IsBanned {
		return "", common.ErrAccountBanned
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repos.Users(s.db).GetByID(ctx, id)
}

// ListPublic returns all public, non-banned users, served from cache when
// possible.
func (s *UserService) ListPublic(ctx context.Context) ([]*models.User, error) {
	if users, ok := s.cache.PublicUsers(ctx); ok {
		return users, nil
	}

	users, err := s.repos.Users(s.db).ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetPublicUsers(ctx, users)
	return users, nil
}

// SearchBySkill returns public users whose offered skills contain term,
// case-insensitively.
func (s *UserService) SearchBySkill(ctx context.Context, term string) ([]*models.User, error) {
	if users, ok := s.cache.SearchResults(ctx, term); ok {
		return users, nil
	}

	users, err := s.repos.Users(s.db).SearchBySkill(ctx, term)
	if err != nil {
		return nil, err
	}

	s.cache.SetSearchResults(ctx, term, users)
	return users, nil
}

// GetProfile returns the detail view for userID: the user plus ratings and
// the most recent completed swaps. Private profiles are only visible to
// their owner (common.ErrForbidden otherwise).
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID string) (*models.UserProfile, error) {
	user, err := s.repos.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsPublic && user.ID != viewerID {
		return nil, common.ErrForbidden
	}

	ratings, err := s.repos.Ratings(s.db).ListByRatedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repos.Swaps(s.db).ListRecentCompleted(ctx, userID, recentSwapsLimit)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{User: user, Ratings: ratings, RecentSwaps: recent}, nil
}

// UpdateProfile applies the non-nil fields of upd to the user's profile and
// returns the updated record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.SkillsOffered != nil {
		user.SkillsOffered = upd.SkillsOffered
	}
	if upd.SkillsWanted != nil {
		user.SkillsWanted = upd.SkillsWanted
	}
	if upd.Availability != nil {
		user.Availability = *upd.Availability
	}
	if upd.IsPublic != nil {
		user.IsPublic = *upd.IsPublic
	}

	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateUsers(ctx)
	return updated, nil
}

// UploadPhoto stores an image for the user and records its URL on the
// profile. Non-image content types yield common.ErrValidation.
func (s *UserService) UploadPhoto(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", common.ErrValidation
	}

	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s_%s%s", userID, uuid.NewString()[:8], ext)

	url, err := s.photoStore.Put(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("photo store error: %w", err)
	}

	if err := s.repos.Users(s.db).SetPhoto(ctx, userID, url); err != nil {
		return "", err
	}

	s.cache.InvalidateUsers(ctx)
	return url, nil
}

// ListAll returns every account, including private and banned ones. Admin
// only; the handler enforces the role.
func (s *UserService) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.db).ListAll(ctx)
}

// SetBanned bans or unbans an account.
func (s *UserService) SetBanned(ctx context.Context, userID string, banned bool) error {
	if err := s.repos.Users(s.db).SetBanned(ctx, userID, banned); err != nil {
		return err
	}
	s.cache.InvalidateUsers(ctx)
	return nil
}

// GetStats aggregates the counters served on the admin dashboard.
func (s *UserService) GetStats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.repos.Users(s.db).Count(ctx)
	if err != nil {
		return nil, err
	}

	swapRepo := s.repos.Swaps(s.db)
	totalSwaps, err := swapRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := swapRepo.CountByStatus(ctx, models.SwapStatusPending)
	if err != nil {
		return nil, err
	}
	completed, err := swapRepo.CountByStatus(ctx, models.SwapStatusCompleted)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:     totalUsers,
		TotalSwaps:     totalSwaps,
		PendingSwaps:   pending,
		CompletedSwaps: completed,
	}, nil
}
