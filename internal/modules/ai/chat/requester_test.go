package chat

import (
	"context"
	"testing"

	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	calls []ai.Descriptor
	body  []byte
	err   error
}

func (f *fakeDispatcher) Post(_ context.Context, d ai.Descriptor) ([]byte, error) {
	f.calls = append(f.calls, d)
	return f.body, f.err
}

func TestTranslate(t *testing.T) {
	d := &fakeDispatcher{body: []byte(`{"choices":[{"message":{"role":"assistant","content":"Hola"}}]}`)}
	tr := NewTranslator(d, "sk-test", "gpt-4o-mini")

	got, err := tr.Translate(context.Background(), "Hello", "Spanish", "English")
	require.NoError(t, err)
	require.Equal(t, "Hola", got)
	require.Len(t, d.calls, 1)
	require.Equal(t, "chat/completions", d.calls[0].Path)
	require.Equal(t, "sk-test", d.calls[0].Credential)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(d.calls[0].Body, &sent))
	require.Equal(t, "gpt-4o-mini", sent["model"])
	require.InDelta(t, 0.3, sent["temperature"], 1e-6)
	require.EqualValues(t, 1000, sent["max_tokens"])
	messages := sent["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	require.Equal(t, "user", msg["role"])
	require.Equal(t, "Translate the following text from English to Spanish. Only return the translated text, nothing else:\n\nHello", msg["content"])
}

func TestTranslateEmptyText(t *testing.T) {
	d := &fakeDispatcher{}
	_, err := NewTranslator(d, "sk-test", "gpt-4o-mini").Translate(context.Background(), "", "Spanish", "English")
	require.True(t, ai.IsKind(err, ai.KindInput))
	require.Equal(t, "Text to translate is empty", err.Error())
	require.Empty(t, d.calls)
}

func TestTranslatePropagatesDispatcherError(t *testing.T) {
	want := ai.NewError(ai.KindTransport, "Error: HTTP/1.1 500 Internal Server Error\nResponse: oops")
	d := &fakeDispatcher{err: want}
	_, err := NewTranslator(d, "sk-test", "gpt-4o-mini").Translate(context.Background(), "Hello", "French", "English")
	require.Same(t, want, err)
}

func TestTranslateParseError(t *testing.T) {
	d := &fakeDispatcher{body: []byte(`{"choices":[]}`)}
	_, err := NewTranslator(d, "sk-test", "gpt-4o-mini").Translate(context.Background(), "Hello", "French", "English")
	require.True(t, ai.IsKind(err, ai.KindParse))
	require.Equal(t, "Invalid response format from API", err.Error())
}
