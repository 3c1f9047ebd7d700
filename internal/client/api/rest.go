package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"sync"

	"skillswap/internal/client/models"
	"skillswap/internal/common"
)

// RestClient implements Client over plain HTTP.
type RestClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*RestClient)(nil)

// NewRestClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:8080". Timeouts are the caller's business: pass a
// context with a deadline.
func NewRestClient(baseURL string) *RestClient {
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *RestClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *RestClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// do sends one JSON request and decodes the JSON response into out (which
// may be nil for responses the caller discards).
func (c *RestClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var d detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&d); err == nil && d.Detail != "" {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, d.Detail)
	}
	return fmt.Errorf("server error (%d)", resp.StatusCode)
}

func (c *RestClient) Register(ctx context.Context, in RegisterInput) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *RestClient) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *RestClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) SearchUsers(ctx context.Context, skill string) ([]*models.User, error) {
	var out []*models.User
	path := "/api/users/search/" + url.PathEscape(skill)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/me", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) UploadPhoto(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/users/upload-photo", &buf)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var out struct {
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.PhotoURL, nil
}

func (c *RestClient) CreateSwap(ctx context.Context, in SwapCreateInput) (*models.SwapRequest, error) {
	var out models.SwapRequest
	if err := c.do(ctx, http.MethodPost, "/api/swap-requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) ListOutgoing(ctx context.Context) ([]*models.SwapRequest, error) {
	var out []*models.SwapRequest
	if err := c.do(ctx, http.MethodGet, "/api/swap-requests/my-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) ListIncoming(ctx context.Context) ([]*models.SwapRequest, error) {
	var out []*models.SwapRequest
	if err := c.do(ctx, http.MethodGet, "/api/swap-requests/incoming", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RestClient) UpdateSwapStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	in := map[string]models.SwapStatus{"status": status}
	var out models.SwapRequest
	if err := c.do(ctx, http.MethodPut, "/api/swap-requests/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) DeleteSwap(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/swap-requests/"+url.PathEscape(id), nil, nil)
}

func (c *RestClient) CreateRating(ctx context.Context, in RatingInput) (*models.Rating, error) {
	var out models.Rating
	if err := c.do(ctx, http.MethodPost, "/api/ratings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestClient) ListRatings(ctx context.Context, userID string) ([]*models.Rating, error) {
	var out []*models.Rating
	if err := c.do(ctx, http.MethodGet, "/api/ratings/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
