package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

type Decoder interface {
	Decode(path string, hint Format) (*Clip, error)
}

// FileDecoder decodes MP3 and WAV files. FormatUnknown sniffs the content first.
type FileDecoder struct{}

func (FileDecoder) Decode(path string, hint Format) (*Clip, error) {
	switch hint {
	case FormatMPEG:
		return decodeMP3(path)
	case FormatWAV:
		return decodeWAV(path)
	case FormatUnknown:
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, err
		}
		switch {
		case mtype.Is("audio/wav"), mtype.Is("audio/x-wav"):
			return decodeWAV(path)
		case mtype.Is("audio/mpeg"):
			return decodeMP3(path)
		}
		return nil, fmt.Errorf("unsupported audio type %s", mtype.String())
	}
	return nil, fmt.Errorf("unknown format hint %q", hint)
}

func decodeMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decode mpeg: %w", err)
	}
	// go-mp3 always yields 16-bit stereo
	const channels, bytesPerFrame = 2, 4
	samples := d.Length() / bytesPerFrame
	clip := &Clip{
		Format:     FormatMPEG,
		SampleRate: d.SampleRate(),
		Channels:   channels,
		Samples:    samples,
	}
	if clip.SampleRate > 0 && samples > 0 {
		clip.Duration = time.Duration(samples) * time.Second / time.Duration(clip.SampleRate)
	}
	return clip, nil
}

func decodeWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("decode wav: invalid file")
	}
	duration, err := d.Duration()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	clip := &Clip{
		Format:     FormatWAV,
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		Duration:   duration,
	}
	clip.Samples = int64(duration.Seconds() * float64(clip.SampleRate))
	return clip, nil
}
