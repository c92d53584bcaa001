package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/google/uuid"
)

const maxErrorBody = 512

// HTTPClient talks to the Shopping World REST API.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	found, err := c.do(ctx, http.MethodPost, "/auth/login", "", credentials, &resp)
	if err != nil {
		return nil, err
	}
	if !found || resp.User == nil {
		return nil, ErrEmptyResponse
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	found, err := c.do(ctx, http.MethodPost, "/users", "", user, &created)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &created, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.User, error) {
	var resp models.ProfileResponse
	found, err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &resp)
	if err != nil {
		return nil, err
	}
	if !found || resp.User == nil {
		return nil, ErrEmptyResponse
	}
	return resp.User, nil
}

// Ping succeeds when the server answers at all; the status is ignored.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String()+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

// do sends in as JSON and decodes a 2xx body into out. found is false when
// the body was empty or the JSON literal null.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) (found bool, err error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return false, err
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerToken(token))
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}

// IsUnavailable reports whether err means the server could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
