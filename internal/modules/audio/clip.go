package audio

import "time"

// Format is a decode hint and, once decoded, the detected encoding.
type Format string

const (
	FormatMPEG    Format = "mpeg"
	FormatWAV     Format = "wav"
	FormatUnknown Format = "unknown"
)

func (f Format) String() string {
	return string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatMPEG:
		return "audio/mpeg"
	case FormatWAV:
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}

func (f Format) Ext() string {
	switch f {
	case FormatMPEG:
		return ".mp3"
	case FormatWAV:
		return ".wav"
	default:
		return ".bin"
	}
}

// Clip is a decoded, playable audio handle. Data keeps the encoded bytes.
type Clip struct {
	ID         string        `json:"id"`
	Format     Format        `json:"format"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Samples    int64         `json:"samples"`
	Duration   time.Duration `json:"duration"`
	Data       []byte        `json:"-"`
}
