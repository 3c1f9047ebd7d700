package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"skillswap/internal/client/api"
	"skillswap/internal/client/models"
	"skillswap/internal/client/session"
	"skillswap/internal/skillx"
)

// ErrNotAnImage is returned by UploadPhoto before any network call when
// the file does not look like an image.
var ErrNotAnImage = errors.New("file is not an image")

// openFile is a test seam for os.Open.
var openFile = os.Open

// ProfileService backs the profile editor.
type ProfileService struct {
	api     api.Client
	session *session.Store
}

func NewProfileService(client api.Client, s *session.Store) *ProfileService {
	return &ProfileService{api: client, session: s}
}

// LoadCurrent snapshots the session user into an editable form. Skill
// slices become comma-joined text.
func (s *ProfileService) LoadCurrent(ctx context.Context) (*models.ProfileForm, error) {
	user, err := s.session.RefreshCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ProfileForm{
		Name:          user.Name,
		Location:      user.Location,
		Bio:           user.Bio,
		SkillsOffered: skillx.Join(user.SkillsOffered),
		SkillsWanted:  skillx.Join(user.SkillsWanted),
		Availability:  user.Availability,
		IsPublic:      user.IsPublic,
	}, nil
}

// Save submits the whole form as the new profile: every mutable field is
// replaced, skills re-split from their text form. The session user is
// swapped for the updated record on success.
func (s *ProfileService) Save(ctx context.Context, form models.ProfileForm) (*models.User, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	upd := models.ProfileUpdate{
		Name:          &name,
		Location:      &form.Location,
		Bio:           &form.Bio,
		SkillsOffered: skillx.Split(form.SkillsOffered),
		SkillsWanted:  skillx.Split(form.SkillsWanted),
		Availability:  &form.Availability,
		IsPublic:      &form.IsPublic,
	}

	user, err := s.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}

	s.session.ReplaceUser(user)
	return user, nil
}

// UploadPhoto checks that path names an image, uploads it, and refreshes
// the session user so the new photo URL is visible. The check combines the
// extension with a content sniff of the first bytes.
func (s *ProfileService) UploadPhoto(ctx context.Context, path string) (string, error) {
	contentType, err := imageContentType(path)
	if err != nil {
		return "", err
	}

	f, err := openFile(path)
	if err != nil {
		return "", fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	url, err := s.api.UploadPhoto(ctx, filepath.Base(path), contentType, f)
	if err != nil {
		return "", err
	}

	if _, err := s.session.RefreshCurrentUser(ctx); err != nil {
		return url, err
	}
	return url, nil
}

func imageContentType(path string) (string, error) {
	byExt := mimeByExtension(filepath.Ext(path))
	if byExt == "" {
		return "", ErrNotAnImage
	}

	f, err := openFile(path)
	if err != nil {
		return "", fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading photo: %w", err)
	}

	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", ErrNotAnImage
	}
	return byExt, nil
}

func mimeByExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return ""
}
