package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/storage/local"
	"github.com/stretchr/testify/require"
)

func TestLocalArchiver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clips")
	a := &LocalArchiver{Dir: dir}
	path, err := a.Archive(context.Background(), &audio.Clip{ID: "abc", Format: audio.FormatMPEG, Data: []byte("ID3")})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "abc.mp3"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("ID3"), b)

	require.NoError(t, local.DeleteFile(path))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
