package chat

import (
	"testing"

	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/stretchr/testify/require"
)

func TestExtractContent(t *testing.T) {
	t.Run("chat completion body", func(t *testing.T) {
		body := `{
			"id": "chatcmpl-123",
			"object": "chat.completion",
			"created": 1752157668,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": "Hola, ¿cómo estás hoy?"
				},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 7, "total_tokens": 37}
		}`
		got, err := ExtractContent([]byte(body))
		require.NoError(t, err)
		require.Equal(t, "Hola, ¿cómo estás hoy?", got)
	})

	t.Run("escape sequences", func(t *testing.T) {
		body := `{"choices":[{"message":{"role":"assistant","content":"line one\nsay \"hi\"\\path\r\tend"}}]}`
		got, err := ExtractContent([]byte(body))
		require.NoError(t, err)
		require.Equal(t, "line one\nsay \"hi\"\\path\r\tend", got)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		got, err := ExtractContent([]byte(`{"choices":[{"message":{"content":"  Bonjour\n"}}]}`))
		require.NoError(t, err)
		require.Equal(t, "Bonjour", got)
	})

	t.Run("braces and quotes inside content", func(t *testing.T) {
		got, err := ExtractContent([]byte(`{"choices":[{"message":{"content":"{\"a\": 1} and \"b\""}}]}`))
		require.NoError(t, err)
		require.Equal(t, `{"a": 1} and "b"`, got)
	})

	notFound := []struct {
		name string
		body string
	}{
		{"missing field", `{"choices":[{"message":{"role":"assistant"}}]}`},
		{"no choices", `{"id":"x","choices":[]}`},
		{"empty content", `{"choices":[{"message":{"content":"   "}}]}`},
		{"unrelated json", `{"invalid": "json"}`},
		{"malformed", `{"choices":[{"message":{"content":"unterminated`},
		{"not json", `<html>bad gateway</html>`},
	}
	for _, tc := range notFound {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractContent([]byte(tc.body))
			require.Error(t, err)
			require.True(t, ai.IsKind(err, ai.KindParse))
			require.Empty(t, got)
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"new\nline",
		`quote "inside"`,
		`back\slash`,
		"tab\tand\rreturn",
		"all\n\"four\"\\\r\tin one",
	}
	for _, in := range inputs {
		resp, err := json.Marshal(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": in}}},
		})
		require.NoError(t, err)
		got, err := ExtractContent(resp)
		require.NoError(t, err)
		require.Equal(t, in, got)
	}
}
