package speech

import (
	"context"

	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
)

type Extractor interface {
	Extract(payload []byte) (*audio.Clip, error)
}

type Synthesizer struct {
	dispatcher ai.Dispatcher
	extractor  Extractor
	credential string
	model      string
	voice      string
}

func NewSynthesizer(dispatcher ai.Dispatcher, extractor Extractor, credential, model, voice string) *Synthesizer {
	return &Synthesizer{
		dispatcher: dispatcher,
		extractor:  extractor,
		credential: credential,
		model:      model,
		voice:      voice,
	}
}

// Synthesize speaks text with voice, or the default voice when voice is empty.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string) (*audio.Clip, error) {
	if text == "" {
		return nil, ai.NewError(ai.KindInput, "Text is empty")
	}
	if voice == "" {
		voice = s.voice
	}
	req := &Request{Model: s.model, Input: text, Voice: voice}
	body, err := req.Body()
	if err != nil {
		return nil, ai.Errorf(ai.KindConfiguration, "build speech request: %w", err)
	}
	raw, err := s.dispatcher.Post(ctx, ai.Descriptor{
		Path:       consts.AudioSpeech.String(),
		Body:       body,
		Credential: s.credential,
		Model:      s.model,
	})
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(raw)
}
