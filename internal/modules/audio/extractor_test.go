package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/stretchr/testify/require"
)

type stubDecoder struct {
	hints   []Format
	results map[Format]*Clip
}

func (s *stubDecoder) Decode(path string, hint Format) (*Clip, error) {
	s.hints = append(s.hints, hint)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if clip, ok := s.results[hint]; ok {
		return clip, nil
	}
	return nil, errors.New("cannot decode as " + hint.String())
}

func TestExtractShortCircuitsOnFirstSuccess(t *testing.T) {
	dir := t.TempDir()
	dec := &stubDecoder{results: map[Format]*Clip{
		FormatMPEG:    {Format: FormatMPEG, SampleRate: 24000, Channels: 2, Samples: 24000},
		FormatUnknown: {Format: FormatWAV},
	}}
	clip, err := NewExtractor(dir, dec).Extract([]byte("mp3 bytes"))
	require.NoError(t, err)
	require.Equal(t, []Format{FormatMPEG}, dec.hints)
	require.Equal(t, FormatMPEG, clip.Format)
	require.NotEmpty(t, clip.ID)
	require.Equal(t, []byte("mp3 bytes"), clip.Data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temp file removed after success")
}

func TestExtractFallsBackToSecondHint(t *testing.T) {
	dec := &stubDecoder{results: map[Format]*Clip{
		FormatUnknown: {Format: FormatWAV, SampleRate: 8000, Channels: 1, Samples: 8000},
	}}
	clip, err := NewExtractor(t.TempDir(), dec).Extract([]byte("wav bytes"))
	require.NoError(t, err)
	require.Equal(t, []Format{FormatMPEG, FormatUnknown}, dec.hints)
	require.Equal(t, FormatWAV, clip.Format)
}

func TestExtractKeepsFileWhenBothAttemptsFail(t *testing.T) {
	dir := t.TempDir()
	dec := &stubDecoder{}
	clip, err := NewExtractor(dir, dec).Extract([]byte("garbage"))
	require.Nil(t, clip)
	require.True(t, ai.IsKind(err, ai.KindDecode))
	require.Equal(t, []Format{FormatMPEG, FormatUnknown}, dec.hints)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	kept, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Equal(t, "garbage", string(kept))
}

func TestExtractEmptyPayload(t *testing.T) {
	dec := &stubDecoder{}
	_, err := NewExtractor(t.TempDir(), dec).Extract(nil)
	require.True(t, ai.IsKind(err, ai.KindDecode))
	require.Empty(t, dec.hints)
}

func writeWAV(t *testing.T, path string, sampleRate, samples int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, samples),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

func TestFileDecoderWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, 8000, 8000)

	clip, err := FileDecoder{}.Decode(path, FormatUnknown)
	require.NoError(t, err)
	require.Equal(t, FormatWAV, clip.Format)
	require.Equal(t, 8000, clip.SampleRate)
	require.Equal(t, 1, clip.Channels)
	require.InDelta(t, time.Second.Seconds(), clip.Duration.Seconds(), 0.05)
}

func TestFileDecoderUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))
	_, err := FileDecoder{}.Decode(path, FormatUnknown)
	require.Error(t, err)
	_, err = FileDecoder{}.Decode(path, Format("ogg"))
	require.Error(t, err)
}

func TestExtractRealWAVPayload(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.wav")
	writeWAV(t, src, 16000, 1600)
	payload, err := os.ReadFile(src)
	require.NoError(t, err)

	clip, err := NewExtractor(t.TempDir(), nil).Extract(payload)
	require.NoError(t, err)
	require.Equal(t, FormatWAV, clip.Format)
	require.Equal(t, 16000, clip.SampleRate)
	require.Equal(t, "audio/wav", clip.Format.ContentType())
}
