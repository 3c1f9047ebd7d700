package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/client/models"
)

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1"})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	c.SetToken("tok-1")

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1"})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	token, err := c.Login(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Empty(t, gotAuth)
}

func TestDo_ErrorMapping(t *testing.T) {
	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid or expired token"})
		}))
		defer srv.Close()

		c := NewRestClient(srv.URL)
		_, err := c.CurrentUser(context.Background())
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("other statuses surface the detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "illegal status transition"})
		}))
		defer srv.Close()

		c := NewRestClient(srv.URL)
		_, err := c.UpdateSwapStatus(context.Background(), "s1", models.SwapStatusCompleted)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "illegal status transition")
	})

	t.Run("unreachable server maps to ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // now nothing listens there

		c := NewRestClient(srv.URL)
		_, err := c.ListUsers(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestSearchUsers_EscapesTerm(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode([]*models.User{})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	_, err := c.SearchUsers(context.Background(), "web design")
	require.NoError(t, err)
	assert.Equal(t, "/api/users/search/web%20design", gotPath)
}

func TestUploadPhoto_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "me.png", fh.Filename)
		assert.Equal(t, "image/png", fh.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(map[string]string{"photo_url": "/uploads/new.png"})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	c.SetToken("tok-1")

	url, err := c.UploadPhoto(context.Background(), "me.png", "image/png",
		strings.NewReader("pretend-pixels"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.png", url)
}

func TestDeleteSwap_DiscardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "swap request deleted"})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL)
	require.NoError(t, c.DeleteSwap(context.Background(), "s1"))
}
