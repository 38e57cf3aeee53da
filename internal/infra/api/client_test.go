package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "streetbite/internal/delivery/context"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentials struct {
	token   string
	cleared atomic.Int32
}

func (f *fakeCredentials) Token() string {
	return f.token
}

func (f *fakeCredentials) Clear(context.Context) error {
	f.cleared.Add(1)

	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, creds *fakeCredentials) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts := []Option{WithHTTPClient(srv.Client()), WithTimeout(2 * time.Second)}
	if creds != nil {
		opts = append(opts, WithCredentials(creds))
	}

	return New(srv.URL+"/api/", opts...)
}

func TestClientAttachesHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}, &fakeCredentials{token: "tok-1"})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	_, err := client.do(ctx, http.MethodGet, "/vendors", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "/api/vendors", gotPath)
}

func TestClientOmitsBearerWithoutToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, &fakeCredentials{})

	_, err := client.do(context.Background(), http.MethodGet, "/vendors", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   domainerrors.Kind
		wantTarget error
		wantFields domainerrors.FieldErrors
	}{
		{
			name:       "unauthorized",
			status:     http.StatusUnauthorized,
			wantKind:   domainerrors.KindUnauthorized,
			wantTarget: domainerrors.ErrUnauthorized,
		},
		{
			name:       "forbidden",
			status:     http.StatusForbidden,
			wantKind:   domainerrors.KindUnauthorized,
			wantTarget: domainerrors.ErrForbidden,
		},
		{
			name:       "not found",
			status:     http.StatusNotFound,
			wantKind:   domainerrors.KindNotFound,
			wantTarget: domainerrors.ErrNotFound,
		},
		{
			name:       "validation with field map",
			status:     http.StatusBadRequest,
			body:       `{"message":"bad input","errors":{"email":"must be an email"}}`,
			wantKind:   domainerrors.KindValidationFailed,
			wantTarget: domainerrors.ErrValidationFailed,
			wantFields: domainerrors.FieldErrors{"email": "must be an email"},
		},
		{
			name:       "validation with field list",
			status:     http.StatusUnprocessableEntity,
			body:       `{"fieldErrors":[{"field":"price","message":"must be positive"}]}`,
			wantKind:   domainerrors.KindValidationFailed,
			wantTarget: domainerrors.ErrValidationFailed,
			wantFields: domainerrors.FieldErrors{"price": "must be positive"},
		},
		{
			name:       "conflict",
			status:     http.StatusConflict,
			body:       `{"error":"email already registered"}`,
			wantKind:   domainerrors.KindValidationFailed,
			wantTarget: domainerrors.ErrValidationFailed,
		},
		{
			name:       "other client error",
			status:     http.StatusTeapot,
			wantKind:   domainerrors.KindServer,
			wantTarget: domainerrors.ErrServer,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `<html>oops</html>`,
			wantKind:   domainerrors.KindServer,
			wantTarget: domainerrors.ErrServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			_, err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			assert.ErrorIs(t, err, tt.wantTarget)

			if tt.wantFields != nil {
				var appErr *domainerrors.BaseError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantFields, appErr.Fields())
			}
		})
	}
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	t.Parallel()

	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	withToken := &fakeCredentials{token: "expired"}
	_, err := newTestClient(t, handler, withToken).do(context.Background(), http.MethodGet, "/favorites", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 1, withToken.cleared.Load())

	anonymous := &fakeCredentials{}
	_, err = newTestClient(t, handler, anonymous).do(context.Background(), http.MethodGet, "/favorites", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 0, anonymous.cleared.Load())
}

func TestClientForbiddenKeepsSession(t *testing.T) {
	t.Parallel()

	creds := &fakeCredentials{token: "user-token"}
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, creds)

	_, err := client.do(context.Background(), http.MethodDelete, "/vendors/1", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 0, creds.cleared.Load())
}

func TestClientTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).do(context.Background(), http.MethodGet, "/vendors", nil, nil)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNetwork, domainerrors.KindOf(err))
	assert.True(t, domainerrors.KindOf(err).Retryable())
}

func TestClientDeadlineIsNetworkError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, nil)
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.do(ctx, http.MethodGet, "/vendors", nil, nil)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNetwork, domainerrors.KindOf(err))
}

func TestClientSendsJSONBody(t *testing.T) {
	t.Parallel()

	var gotBody, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}, nil)

	_, err := client.do(context.Background(), http.MethodPost, "/reports", nil, map[string]string{"reason": "spam"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reason":"spam"}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}
