package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Client provides a high-level interface to the Nagar Panchayat portal API.
// The backend is a conventional token-authenticated REST service with
// trailing-slash resource routes and JSON bodies throughout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Token      string
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger sets the logger used for transport diagnostics. The default
// discards everything.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}

// WithToken attaches a session token to every outgoing request, using the
// backend's token authentication scheme ("Authorization: Token <key>").
// Ignored when an explicit HTTP client is also supplied.
func WithToken(token string) ClientOption {
	return func(opts *ClientOptions) {
		opts.Token = token
	}
}

// NewClient creates a portal SDK client that communicates with the API server
// at baseURL. An http.Client is created automatically when one is not
// supplied; with WithToken, the client is built from an oauth2 static token
// source so every request carries the credential.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		if opts.Token != "" {
			source := oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: opts.Token,
				TokenType:   "Token",
			})
			opts.HTTPClient = oauth2.NewClient(context.Background(), source)
		} else {
			opts.HTTPClient = http.DefaultClient
		}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// BaseURL returns the API server URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one JSON request and decodes a 2xx response body into out (when
// out is non-nil). Non-2xx responses become typed errors: 401 maps to
// *UnauthorizedError, everything else to *APIError with the backend's error
// payload unpacked.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request complete", "op", op, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		return &UnauthorizedError{Operation: op}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// decodeAPIError unpacks a structured error body. The backend emits either a
// {"detail": ...} / {"message": ...} object or a serializer error map of
// field name to list of messages; a plain string body lands in Detail.
func decodeAPIError(op string, resp *http.Response) error {
	apiErr := &APIError{Operation: op, StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			apiErr.Detail = s
		}
		return apiErr
	}

	for key, value := range payload {
		switch key {
		case "detail":
			var s string
			if json.Unmarshal(value, &s) == nil {
				apiErr.Detail = s
			}
		case "message":
			var s string
			if json.Unmarshal(value, &s) == nil {
				apiErr.Message = s
			}
		default:
			var msgs []string
			if json.Unmarshal(value, &msgs) == nil && len(msgs) > 0 {
				if apiErr.Fields == nil {
					apiErr.Fields = make(map[string][]string)
				}
				apiErr.Fields[key] = msgs
			}
		}
	}
	return apiErr
}
