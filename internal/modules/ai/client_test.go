package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorderFunc func(ctx context.Context, o *Outcome) error

func (f recorderFunc) Record(ctx context.Context, o *Outcome) error {
	return f(ctx, o)
}

func TestPostSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.Equal(t, `{"model":"gpt-4o-mini"}`, string(b))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var recorded *Outcome
	c := NewClient(srv.URL+"/v1", nil, recorderFunc(func(_ context.Context, o *Outcome) error {
		recorded = o
		return nil
	}))
	body, err := c.Post(context.Background(), Descriptor{
		Path:       "chat/completions",
		Body:       []byte(`{"model":"gpt-4o-mini"}`),
		Credential: "sk-test",
		Model:      "gpt-4o-mini",
	})
	require.NoError(t, err)
	require.Equal(t, `{"ok":true}`, string(body))
	require.NotNil(t, recorded)
	require.True(t, recorded.Succeed())
	require.Equal(t, http.StatusOK, recorded.StatusCode)
	require.Equal(t, "gpt-4o-mini", recorded.Model)
}

func TestPostMissingCredential(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err := c.Post(context.Background(), Descriptor{Path: "audio/speech", Body: []byte(`{}`)})
	require.Error(t, err)
	require.True(t, IsKind(err, KindConfiguration))
	require.Equal(t, "API key is not configured", err.Error())
	require.Zero(t, atomic.LoadInt32(&hits))
}

func TestPostNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	var recorded *Outcome
	c := NewClient(srv.URL, nil, recorderFunc(func(_ context.Context, o *Outcome) error {
		recorded = o
		return errors.New("db down")
	}))
	_, err := c.Post(context.Background(), Descriptor{Path: "chat/completions", Credential: "sk-bad"})
	require.Error(t, err)
	require.True(t, IsKind(err, KindTransport))
	require.Equal(t, "Error: HTTP/1.1 401 Unauthorized\nResponse: {\"error\":{\"message\":\"Incorrect API key provided\"}}", err.Error())
	require.False(t, recorded.Succeed())
	require.Equal(t, http.StatusUnauthorized, recorded.StatusCode)
}

func TestPostTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, nil)
	_, err := c.Post(context.Background(), Descriptor{Path: "chat/completions", Credential: "sk-test"})
	require.Error(t, err)
	require.True(t, IsKind(err, KindTransport))
	require.True(t, strings.HasPrefix(err.Error(), "Error: "))
	require.True(t, strings.HasSuffix(err.Error(), "\nResponse: "))
}

func TestKindOf(t *testing.T) {
	err := Errorf(KindParse, "wrapped: %w", io.ErrUnexpectedEOF)
	require.Equal(t, KindParse, KindOf(err))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, Kind(""), KindOf(io.EOF))
	require.False(t, IsKind(nil, KindParse))
}
