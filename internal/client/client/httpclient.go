package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/vidwave/internal/client/models"
	"github.com/dmitrijs2005/vidwave/internal/client/session"
	"github.com/dmitrijs2005/vidwave/internal/common"
	"github.com/dmitrijs2005/vidwave/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient talks to the VidWave services over HTTP with JSON bodies.
type HTTPClient struct {
	endpoints  Endpoints
	store      session.Store
	httpClient *http.Client
	logger     logging.Logger
}

// Option configures the client.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = httpClient
	}
}

// WithTimeout limits each request. Zero leaves requests unbounded. A client
// given through WithHTTPClient is copied, not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		hc := &http.Client{}
		if c.httpClient != nil {
			cp := *c.httpClient
			hc = &cp
		}
		hc.Timeout = timeout
		c.httpClient = hc
	}
}

// NewHTTPClient returns a client that reads and writes the session token
// through store.
func NewHTTPClient(endpoints Endpoints, store session.Store, logger logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoints:  endpoints,
		store:      store,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs one call against service. A nil body sends no payload.
// When requiresAuth is set and a token is present it goes out in the
// X-Auth-Token header; a missing token is not an error here.
func (c *HTTPClient) Request(ctx context.Context, service Service, path, method string, body any, requiresAuth bool) (json.RawMessage, error) {
	base, ok := c.endpoints.baseURL(service)
	if !ok {
		return nil, &RequestError{Message: common.ErrUnknownService.Error(), Err: common.ErrUnknownService}
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, &RequestError{Message: common.ErrUnsupportedMethod.Error(), Err: common.ErrUnsupportedMethod}
	}

	url := base
	if path != "" {
		url = strings.TrimRight(base, "/") + path
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, newTransportError(err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if requiresAuth {
		token, err := c.store.Token(ctx)
		if err != nil {
			return nil, &RequestError{Message: err.Error(), Err: err}
		}
		if token != "" {
			req.Header.Set(common.AuthTokenHeaderName, token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed",
			"service", string(service), "method", method, "path", path, "request_id", requestID, "error", err.Error())
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(err)
	}

	c.logger.Debug(ctx, "request completed",
		"service", string(service), "method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp.StatusCode, respBody)
	}

	return json.RawMessage(respBody), nil
}

func parseError(statusCode int, body []byte) *RequestError {
	var errResp struct {
		Error string `json:"error"`
	}
	msg := FallbackMessage
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
	}
	return &RequestError{StatusCode: statusCode, Message: msg}
}

func (c *HTTPClient) call(ctx context.Context, service Service, path, method string, body any, requiresAuth bool, out any) error {
	raw, err := c.Request(ctx, service, path, method, body, requiresAuth)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestError{Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	return nil
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, body any) (*models.AuthResult, error) {
	var result models.AuthResult
	if err := c.call(ctx, ServiceAuth, path, http.MethodPost, body, false, &result); err != nil {
		return nil, err
	}
	if err := c.store.SetToken(ctx, result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login exchanges credentials for a session and stores the new token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	return c.authenticate(ctx, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and stores the new token.
func (c *HTTPClient) Register(ctx context.Context, email, password, username, displayName string) (*models.AuthResult, error) {
	return c.authenticate(ctx, "/register", map[string]string{
		"email":        email,
		"password":     password,
		"username":     username,
		"display_name": displayName,
	})
}

// Logout ends the session. The local token is cleared even when the server
// call fails or ctx is done; only a failure to clear it is returned.
func (c *HTTPClient) Logout(ctx context.Context) error {
	if _, err := c.Request(ctx, ServiceAuth, "/logout", http.MethodPost, struct{}{}, true); err != nil {
		c.logger.Warn(ctx, "remote logout failed", "error", err.Error())
	}
	return c.clearToken(ctx)
}

// clearToken detaches from ctx cancellation: a session that ends because the
// caller gave up must still be removed from disk.
func (c *HTTPClient) clearToken(ctx context.Context) error {
	return c.store.Clear(context.WithoutCancel(ctx))
}

// CurrentUser returns the profile behind the stored token, or nil when there
// is no token or the server no longer accepts it. A rejected token is cleared.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	token, err := c.store.Token(ctx)
	if err != nil {
		c.logger.Warn(ctx, "cannot read session token", "error", err.Error())
		return nil, nil
	}
	if token == "" {
		return nil, nil
	}

	var resp struct {
		User *models.User `json:"user"`
	}
	err = c.call(ctx, ServiceAuth, "/me", http.MethodGet, nil, true, &resp)
	if err == nil && resp.User == nil {
		err = &RequestError{Message: "response has no user"}
	}
	if err != nil {
		c.logger.Info(ctx, "session is no longer valid", "error", err.Error())
		if err := c.clearToken(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return resp.User, nil
}

// BecomeAuthor creates a channel for the logged-in user. Cached profiles are
// not refreshed here.
func (c *HTTPClient) BecomeAuthor(ctx context.Context, channelName, description string) (*models.AuthorResult, error) {
	var result models.AuthorResult
	body := map[string]string{"channel_name": channelName, "description": description}
	if err := c.call(ctx, ServiceAuth, "/become-author", http.MethodPost, body, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.call(ctx, ServiceDashboard, "/stats", http.MethodGet, nil, true, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) UploadVideo(ctx context.Context, title, description, thumbnailURL, category string) (*models.UploadResult, error) {
	var result models.UploadResult
	body := map[string]string{
		"title":         title,
		"description":   description,
		"thumbnail_url": thumbnailURL,
		"category":      category,
	}
	if err := c.call(ctx, ServiceDashboard, "/upload-video", http.MethodPost, body, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateThumbnail asks the image service for a cover. No token is sent.
func (c *HTTPClient) GenerateThumbnail(ctx context.Context, prompt string) (*models.Thumbnail, error) {
	var thumb models.Thumbnail
	if err := c.call(ctx, ServiceThumbnail, "", http.MethodPost, map[string]string{"prompt": prompt}, false, &thumb); err != nil {
		return nil, err
	}
	return &thumb, nil
}
