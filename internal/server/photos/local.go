package photos

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"skillswap/internal/filex"
)

// LocalStore writes photos to an uploads directory on disk. Files are served
// back by the HTTP server under /uploads/.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Clean(key))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return "/uploads/" + key, nil
}
