package logs

import (
	"path/filepath"
	"testing"

	"github.com/reusedev/tutor-voice/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, parseLogLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, parseLogLevel("warn"))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel(""))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel("verbose"))
}

func TestInitLoggerWritesFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	file := filepath.Join(t.TempDir(), "tutor-voice.log")
	InitLogger(&config.Config{LogLevel: "info", LogFile: file, LogMaxSize: 1})
	Logger.Info().Msg("hello")
	require.FileExists(t, file)
}
