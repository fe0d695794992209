package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte(`
openai:
  api_key: sk-test
`))
	require.NoError(t, err)
	require.Equal(t, "https://api.openai.com/v1", c.OpenAI.BaseURL)
	require.Equal(t, "gpt-4o-mini", c.OpenAI.TranslationModel)
	require.Equal(t, "tts-1", c.OpenAI.TTSModel)
	require.Equal(t, "alloy", c.OpenAI.TTSVoice)
	require.Equal(t, "Spanish", c.Narration.DefaultTargetLanguage)
	require.Equal(t, "English", c.Narration.DefaultSourceLanguage)
	require.Equal(t, "text", c.Narration.SpeakMode)
	require.Equal(t, 30*time.Minute, c.SessionTTLDuration())
	require.True(t, c.OpenAI.IsConfigured())
}

func TestParseVerify(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad speak mode", "narration:\n  speak_mode: loud\n"},
		{"bad session ttl", "session_ttl: soon\n"},
		{"bad timeout", "openai:\n  timeout: never\n"},
		{"unknown supplier", "storage_enabled: true\nstorage_supplier: s3\n"},
		{"local without dir", "storage_enabled: true\nstorage_supplier: local\n"},
		{"oss without bucket", "storage_enabled: true\nstorage_supplier: ali_oss\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestParseLocalStorage(t *testing.T) {
	c, err := Parse([]byte("storage_enabled: true\nstorage_supplier: local\nlocal_dir: /tmp/clips\n"))
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, c.URLExpiresDuration())
}

func TestInitEnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	Init([]byte("openai:\n  api_key: sk-file\n"))
	require.Equal(t, "sk-env", GConfig.OpenAI.APIKey)
}
