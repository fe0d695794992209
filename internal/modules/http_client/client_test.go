package http_client

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestNewRequest(t *testing.T) {
	c := New()
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	req, err := c.NewRequest(http.MethodPost, "http://example.com/v1/audio/speech",
		WithHeader("Authorization", "Bearer sk-1"),
		WithBody([]byte(`{"input":"hi"}`)),
		WithContext(ctx),
	)
	require.NoError(t, err)
	require.Equal(t, "Bearer sk-1", req.Header.Get("Authorization"))
	require.Equal(t, ctx, req.Context())
	b, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Equal(t, `{"input":"hi"}`, string(b))
}

func TestNewRequestMarshalsStruct(t *testing.T) {
	req, err := New().NewRequest(http.MethodPost, "http://example.com", WithBody(struct {
		Model string `json:"model"`
	}{"tts-1"}))
	require.NoError(t, err)
	b, _ := io.ReadAll(req.Body)
	require.JSONEq(t, `{"model":"tts-1"}`, string(b))
}

func TestNewWithTimeout(t *testing.T) {
	require.Same(t, http.DefaultClient, NewWithTimeout(0).HttpClient)
	require.Equal(t, 3*time.Second, NewWithTimeout(3*time.Second).HttpClient.Timeout)
}
