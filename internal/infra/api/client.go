// Package api is the typed facade over the remote StreetBite backend. Every
// call returns entities or a classified domain error; raw transport errors
// never leave this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"streetbite/config"
	deliverycontext "streetbite/internal/delivery/context"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 8 << 20
)

// Credentials supplies the bearer token and drops it once the backend
// rejects it.
type Credentials interface {
	Token() string
	Clear(ctx context.Context) error
}

// Client performs requests against the backend base URL.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials Credentials
	logger      *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithCredentials attaches the session token to every request.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.credentials = creds }
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for baseURL, e.g. http://localhost:8081/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// ClientParams holds dependencies for the backend client, injected by Fx
type ClientParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Credentials Credentials
}

// NewClient builds the client from configuration.
func NewClient(params ClientParams) *Client {
	return New(params.Config.Backend.BaseURL,
		WithTimeout(params.Config.Backend.Timeout),
		WithCredentials(params.Credentials),
		WithLogger(params.Logger),
	)
}

// do sends one request and returns the raw 2xx body. Any other outcome is
// returned as a classified error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	logger := deliverycontext.Logger(ctx, c.logger)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, domainerrors.ErrInternalError.WithDetails("encode request body").WithCause(err)
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails("build request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := deliverycontext.RequestID(ctx); id != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
	}

	token := ""
	if c.credentials != nil {
		token = c.credentials.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Backend unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrNetwork.WithDetails(method + " " + path).WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, domainerrors.ErrNetwork.WithDetails("read response body").WithCause(err)
	}

	logger.Debug("Backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return raw, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && c.credentials != nil {
		logger.Info("Backend rejected the session token, signing out")
		if clearErr := c.credentials.Clear(ctx); clearErr != nil {
			logger.Warn("Failed to clear session", slog.Any("error", clearErr))
		}
	}

	return nil, classify(resp.StatusCode, raw)
}

// errorBody covers the error shapes the backend emits.
type errorBody struct {
	Message     string          `json:"message"`
	Error       string          `json:"error"`
	Errors      json.RawMessage `json:"errors"`
	FieldErrors json.RawMessage `json:"fieldErrors"`
}

func classify(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	details := strings.TrimSpace(body.Message)
	if details == "" {
		details = strings.TrimSpace(body.Error)
	}

	var base *domainerrors.BaseError
	switch status {
	case http.StatusUnauthorized:
		base = domainerrors.ErrUnauthorized
	case http.StatusForbidden:
		base = domainerrors.ErrForbidden
	case http.StatusNotFound:
		base = domainerrors.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		fields := parseFieldErrors(body.FieldErrors)
		if len(fields) == 0 {
			fields = parseFieldErrors(body.Errors)
		}
		appErr := domainerrors.ErrValidationFailed.WithDetails(details)
		if len(fields) > 0 {
			appErr = appErr.WithFields(fields)
		}

		return appErr
	default:
		base = domainerrors.ErrServer
		if details == "" {
			details = http.StatusText(status)
		}
	}

	return base.WithDetails(details)
}

// parseFieldErrors accepts {"field": "msg"}, {"field": ["msg"]} and
// [{"field": "f", "message": "msg"}].
func parseFieldErrors(raw json.RawMessage) domainerrors.FieldErrors {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	fields := domainerrors.FieldErrors{}
	switch raw[0] {
	case '{':
		var m map[string]json.RawMessage
		if json.Unmarshal(raw, &m) != nil {
			return nil
		}
		for k, v := range m {
			var s string
			if json.Unmarshal(v, &s) == nil {
				fields[k] = s

				continue
			}
			var list []string
			if json.Unmarshal(v, &list) == nil && len(list) > 0 {
				fields[k] = strings.Join(list, ", ")
			}
		}
	case '[':
		var list []struct {
			Field          string `json:"field"`
			Message        string `json:"message"`
			DefaultMessage string `json:"defaultMessage"`
		}
		if json.Unmarshal(raw, &list) != nil {
			return nil
		}
		for _, item := range list {
			if item.Field == "" {
				continue
			}
			msg := item.Message
			if msg == "" {
				msg = item.DefaultMessage
			}
			fields[item.Field] = msg
		}
	}

	return fields
}

func undecodable(path string, err error) error {
	return domainerrors.ErrServer.WithDetails("unexpected response from " + path).WithCause(errors.WithStack(err))
}
