package audio

import (
	"bytes"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/storage/local"
)

// attempts are tried in order; the first success wins.
var attempts = []Format{FormatMPEG, FormatUnknown}

type Extractor struct {
	tempDir string
	decoder Decoder
}

func NewExtractor(tempDir string, decoder Decoder) *Extractor {
	if decoder == nil {
		decoder = FileDecoder{}
	}
	return &Extractor{
		tempDir: tempDir,
		decoder: decoder,
	}
}

// Extract turns a speech response body into a Clip. On failure the temp file
// is left in place and its path logged.
func (e *Extractor) Extract(payload []byte) (*Clip, error) {
	if len(payload) == 0 {
		logs.Logger.Error().Msg("audio data is empty")
		return nil, ai.NewError(ai.KindDecode, "Failed to create audio clip from response")
	}
	id := uuid.NewString()
	tempPath := filepath.Join(e.tempDir, "tts_"+id+FormatMPEG.Ext())
	if err := local.SaveFile(bytes.NewReader(payload), tempPath); err != nil {
		logs.Logger.Err(err).Str("path", tempPath).Msg("save audio file")
		return nil, ai.Errorf(ai.KindDecode, "Failed to save audio file: %w", err)
	}
	logs.Logger.Debug().Int("size", len(payload)).Str("path", tempPath).Msg("saved audio")

	var lastErr error
	for _, hint := range attempts {
		clip, err := e.decoder.Decode(tempPath, hint)
		if err != nil {
			lastErr = err
			logs.Logger.Warn().Err(err).Str("hint", hint.String()).Msg("decode audio")
			continue
		}
		if clip.Samples == 0 {
			logs.Logger.Error().Str("hint", hint.String()).Msg("audio clip has 0 samples")
		}
		clip.ID = id
		clip.Data = payload
		if err := local.DeleteFile(tempPath); err != nil {
			logs.Logger.Warn().Err(err).Str("path", tempPath).Msg("remove temp audio")
		}
		return clip, nil
	}
	logs.Logger.Error().Err(lastErr).Str("path", tempPath).Msg("failed to decode audio with every format hint, file kept")
	return nil, ai.Errorf(ai.KindDecode, "Failed to create audio clip from response: %w", lastErr)
}
