package storage

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/storage/local"
)

// Archiver keeps a copy of synthesized audio and returns where it can be fetched.
type Archiver interface {
	Archive(ctx context.Context, clip *audio.Clip) (string, error)
}

// LocalArchiver writes clips under Dir, one file per clip id.
type LocalArchiver struct {
	Dir string
}

func (a *LocalArchiver) Archive(_ context.Context, clip *audio.Clip) (string, error) {
	path := filepath.Join(a.Dir, clip.ID+clip.Format.Ext())
	if err := local.SaveFile(bytes.NewReader(clip.Data), path); err != nil {
		return "", err
	}
	return path, nil
}
