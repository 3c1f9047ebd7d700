// Package services holds the client's application logic: the profile
// directory, the swap-request lifecycle, profile editing, and ratings.
// Services sit between the CLI and the API client; the session store tells
// them who is logged in.
package services

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
	"skillswap/internal/client/session"
)

// ErrEmptySearchTerm is returned by SearchBySkill when the term is blank
// after trimming. No network call is made; the caller keeps whatever list
// it is showing.
var ErrEmptySearchTerm = errors.New("empty search term")

// DirectoryService serves the browse and search views.
type DirectoryService struct {
	api     api.Client
	session *session.Store
}

func NewDirectoryService(client api.Client, s *session.Store) *DirectoryService {
	return &DirectoryService{api: client, session: s}
}

// List returns every public profile except the session user's own.
func (s *DirectoryService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return s.withoutSelf(users), nil
}

// SearchBySkill returns the public profiles offering a matching skill,
// minus the session user.
func (s *DirectoryService) SearchBySkill(ctx context.Context, term string) ([]*models.User, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	users, err := s.api.SearchUsers(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.withoutSelf(users), nil
}

// Profile returns the detail view for one user.
func (s *DirectoryService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.api.GetProfile(ctx, userID)
}

func (s *DirectoryService) withoutSelf(users []*models.User) []*models.User {
	self := s.session.CurrentUser()
	if self == nil {
		return users
	}

	result := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.ID != self.ID {
			result = append(result, u)
		}
	}
	return result
}
