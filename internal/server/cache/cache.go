// Package cache provides an optional Redis read cache for the user
// directory. A nil *Cache is valid and disables caching, so the server keeps
// working when Redis is absent or unreachable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"skillswap/internal/server/models"
)

const (
	keyPublicUsers   = "users:public"
	keySearchPrefix  = "users:search:"
	defaultEntryTTL  = 30 * time.Second
	connectProbeWait = 5 * time.Second
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr (host:port or redis:// URL) and returns a
// Cache. On any connection problem it returns nil: callers treat a nil Cache
// as "no cache".
func New(ctx context.Context, addr string) *Cache {
	if addr == "" {
		return nil
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	probeCtx, cancel := context.WithTimeout(ctx, connectProbeWait)
	defer cancel()
	if err := client.Ping(probeCtx).Err(); err != nil {
		_ = client.Close()
		return nil
	}

	return &Cache{client: client, ttl: defaultEntryTTL}
}

func (c *Cache) getUsers(ctx context.Context, key string) ([]*models.User, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var users []*models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, false
	}
	return users, true
}

func (c *Cache) setUsers(ctx context.Context, key string, users []*models.User) {
	if c == nil {
		return
	}
	data, err := json.Marshal(users)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}

// PublicUsers returns the cached directory listing, if present.
func (c *Cache) PublicUsers(ctx context.Context) ([]*models.User, bool) {
	return c.getUsers(ctx, keyPublicUsers)
}

// SetPublicUsers caches the directory listing.
func (c *Cache) SetPublicUsers(ctx context.Context, users []*models.User) {
	c.setUsers(ctx, keyPublicUsers, users)
}

// SearchResults returns cached search results for term, if present.
func (c *Cache) SearchResults(ctx context.Context, term string) ([]*models.User, bool) {
	return c.getUsers(ctx, keySearchPrefix+strings.ToLower(term))
}

// SetSearchResults caches search results for term.
func (c *Cache) SetSearchResults(ctx context.Context, term string, users []*models.User) {
	c.setUsers(ctx, keySearchPrefix+strings.ToLower(term), users)
}

// InvalidateUsers drops the directory listing and every cached search
// result. Called after any profile mutation, photo upload, ban/unban, or
// registration.
func (c *Cache) InvalidateUsers(ctx context.Context) {
	if c == nil {
		return
	}

	_ = c.client.Del(ctx, keyPublicUsers).Err()

	iter := c.client.Scan(ctx, 0, keySearchPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}

// Close releases the underlying connection. Safe on nil.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	err := c.client.Close()
	if err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
