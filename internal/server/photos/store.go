// Package photos stores profile photo assets. The local-disk store mirrors
// the uploads directory served under /uploads; the S3 store targets any
// S3-compatible endpoint (AWS, MinIO).
package photos

import (
	"context"
	"io"
)

// Store persists a photo under key and returns the public URL to reach it.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
