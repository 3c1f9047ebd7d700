package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"skillswap/internal/client/api/apitest"
	"skillswap/internal/client/models"
	"skillswap/internal/client/session"
	"skillswap/internal/client/storage"
)

// newSession logs user in against the fake backend so services under test
// see an active session.
func newSession(t *testing.T, fake *apitest.Fake, user *models.User) *session.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB);`)
	require.NoError(t, err)

	fake.LoginFn = func(context.Context, string, string) (string, error) {
		return "test-token", nil
	}
	fake.CurrentUserFn = func(context.Context) (*models.User, error) {
		return user, nil
	}

	s := session.NewStore(fake, storage.NewSQLiteMetadataRepository(db))
	require.NoError(t, s.Login(context.Background(), user.Email, "pw"))

	// drop the setup calls so tests count only their own
	fake.Calls = make(map[string]int)
	return s
}
