// Package client wraps the pizza-ordering backend's REST surface in typed
// calls. One shared request path attaches the bearer credential, unwraps
// the response envelope and classifies failures; the per-resource files
// (auth, pizza, cart, order, payment, admin) stay thin on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"crust-connect/internal/config"
)

// CredentialStore is the persisted slot the bearer token lives in. The
// client reads it on every call and clears it on authentication expiry.
type CredentialStore interface {
	Token() string
	Clear() error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialStore
	log        *slog.Logger

	// onUnauthorized lets the session layer drop its in-memory identity
	// when any call hits the 401 teardown path.
	onUnauthorized func()
}

func New(cfg config.API, creds CredentialStore, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: cfg.BaseURL,
		creds:   creds,
		log:     log,
	}
}

// OnUnauthorized registers the hook invoked after a 401 teardown.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the backend's uniform response wrapper. Callers of the typed
// modules only ever see the data payload.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const genericErrMsg = "An error occurred"

// do performs one backend call: bearer injection, envelope unwrap, error
// classification. out, when non-nil, receives the decoded data payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{
			Kind:    KindTransport,
			Message: "Could not reach the server",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			Kind:    KindTransport,
			Message: "Could not read the server response",
			Err:     err,
		}
	}

	var env envelope
	if len(raw) > 0 {
		// a malformed envelope still classifies by status below
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireSession(requestID, env.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = genericErrMsg
		}
		c.log.Debug("backend error response",
			"status", resp.StatusCode, "path", path, "request_id", requestID)
		return &APIError{
			Kind:    classify(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: msg,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response payload: %w", err)
		}
	}
	return nil
}

// expireSession is the global 401 path: the persisted credential and
// identity go away regardless of which endpoint produced the response.
// The server's own message still reaches the caller, so a rejected login
// reads "Invalid email or password" rather than a session notice.
func (c *Client) expireSession(requestID, message string) error {
	if err := c.creds.Clear(); err != nil {
		c.log.Warn("clear persisted session", "error", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	c.log.Info("session expired, credential cleared", "request_id", requestID)
	if message == "" {
		message = "Your session has expired, please log in again"
	}
	return &APIError{
		Kind:    KindUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

func classify(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindUnknown
	}
}
