package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-portal/internal/app/services/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	authenticated bool
	token         string
	clears        int
}

func (s *fakeSession) ID() string            { return "session-1" }
func (s *fakeSession) IsAuthenticated() bool { return s.authenticated }
func (s *fakeSession) Username() string      { return "user" }
func (s *fakeSession) BasicToken() string    { return s.token }

func (s *fakeSession) MarkAuthenticated(ctx context.Context, username, token string) error {
	s.authenticated, s.token = true, token
	return nil
}

func (s *fakeSession) MarkUnauthenticated(ctx context.Context) error {
	s.clears++
	s.authenticated, s.token = false, ""
	return nil
}

func newEchoServer(t *testing.T, status int, seen *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAuthTransport(t *testing.T) {
	t.Run("Authenticated session adds the basic header", func(t *testing.T) {
		var seen string
		server := newEchoServer(t, http.StatusOK, &seen)
		state := &fakeSession{authenticated: true, token: "dXNlcjp1c2Vy"}
		client := NewClient(server.Client().Transport, zap.NewNop())

		ctx := session.WithHolder(context.Background(), state)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Basic dXNlcjp1c2Vy", seen)
		assert.Empty(t, req.Header.Get("Authorization"), "original request must not be mutated")
	})

	t.Run("No session sends the request untouched", func(t *testing.T) {
		var seen string
		server := newEchoServer(t, http.StatusOK, &seen)
		client := NewClient(server.Client().Transport, zap.NewNop())

		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, seen)
	})

	t.Run("Unauthenticated session sends no header", func(t *testing.T) {
		var seen string
		server := newEchoServer(t, http.StatusOK, &seen)
		client := NewClient(server.Client().Transport, zap.NewNop())

		ctx := session.WithHolder(context.Background(), &fakeSession{})
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, seen)
	})

	t.Run("Unauthorized answer ends the session", func(t *testing.T) {
		var seen string
		server := newEchoServer(t, http.StatusUnauthorized, &seen)
		state := &fakeSession{authenticated: true, token: "dXNlcjp1c2Vy"}
		client := NewClient(server.Client().Transport, zap.NewNop())

		ctx := session.WithHolder(context.Background(), state)
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.False(t, state.IsAuthenticated())
		assert.Equal(t, 1, state.clears)
	})
}
