// Package session tracks who is logged in. The Store is the single owner
// of the access token: it installs it on the API client, keeps the current
// user in memory, and persists the token so a restart can restore the
// session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
	"skillswap/internal/client/storage"
	"skillswap/internal/skillx"
)

// tokenKey is the metadata key the access token is persisted under.
const tokenKey = "access_token"

type Store struct {
	api  api.Client
	meta storage.MetadataRepository

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore(client api.Client, meta storage.MetadataRepository) *Store {
	return &Store{api: client, meta: meta}
}

// LoggedIn reports whether a session is active.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login authenticates and installs the session. Any failure leaves the
// previous session state untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.install(ctx, token)
}

// Register creates an account and installs the resulting session. The
// form's skill fields are free text and are comma-split before
// transmission.
func (s *Store) Register(ctx context.Context, form models.RegisterForm) error {
	token, err := s.api.Register(ctx, api.RegisterInput{
		Name:          form.Name,
		Email:         form.Email,
		Password:      form.Password,
		Location:      form.Location,
		Bio:           form.Bio,
		SkillsOffered: skillx.Split(form.SkillsOffered),
		SkillsWanted:  skillx.Split(form.SkillsWanted),
		Availability:  form.Availability,
	})
	if err != nil {
		return err
	}
	return s.install(ctx, token)
}

// install points the API client at the new token, fetches the account it
// belongs to, and only then commits the session. On any failure the old
// token is put back.
func (s *Store) install(ctx context.Context, token string) error {
	s.mu.Lock()
	prev := s.token
	s.mu.Unlock()

	s.api.SetToken(token)
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.api.SetToken(prev)
		return err
	}

	if err := s.meta.Set(ctx, tokenKey, []byte(token)); err != nil {
		s.api.SetToken(prev)
		return fmt.Errorf("persisting token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout drops the session everywhere: memory, API client, and durable
// storage. Calling it while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.api.SetToken("")
	return s.meta.Delete(ctx, tokenKey)
}

// RefreshCurrentUser re-fetches the session user from the server. A 401
// means the token is dead, so the session is closed (fail-closed) and the
// unauthorized error is reported to the caller.
func (s *Store) RefreshCurrentUser(ctx context.Context) (*models.User, error) {
	if !s.LoggedIn() {
		return nil, api.ErrUnauthorized
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		if isUnauthorized(err) {
			_ = s.Logout(ctx)
		}
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// Restore loads a previously persisted token, if any, and validates it
// once against the server. A dead token is discarded silently; transport
// failures are reported so the caller can tell the user the server is
// down.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("loading persisted token: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	token := string(raw)
	s.api.SetToken(token)

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.api.SetToken("")
		if isUnauthorized(err) {
			return s.meta.Delete(ctx, tokenKey)
		}
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

func isUnauthorized(err error) bool {
	return errors.Is(err, api.ErrUnauthorized)
}

// ReplaceUser swaps the in-memory user snapshot, e.g. after a profile
// save returned the updated record.
func (s *Store) ReplaceUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user = user
	}
}
