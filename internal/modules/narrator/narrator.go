package narrator

import (
	"context"

	"github.com/google/uuid"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/observer"
)

type Translator interface {
	Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) (*audio.Clip, error)
}

type Options struct {
	DefaultTargetLanguage string
	DefaultSourceLanguage string
}

// Narrator chains translation and speech. It holds no per-call state, so one
// instance serves any number of concurrent callers.
type Narrator struct {
	observer.Subjects
	translator  Translator
	synthesizer Synthesizer
	opts        Options
}

func New(translator Translator, synthesizer Synthesizer, opts Options) *Narrator {
	return &Narrator{
		translator:  translator,
		synthesizer: synthesizer,
		opts:        opts,
	}
}

func (n *Narrator) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = n.opts.DefaultTargetLanguage
	}
	if sourceLanguage == "" {
		sourceLanguage = n.opts.DefaultSourceLanguage
	}
	return n.translator.Translate(ctx, text, targetLanguage, sourceLanguage)
}

func (n *Narrator) Speak(ctx context.Context, text, voice string) (*audio.Clip, error) {
	return n.synthesizer.Synthesize(ctx, text, voice)
}

// TranslateAndSpeak speaks the translation of text. Speech is only requested
// after translation succeeds; the first error ends the call as is.
func (n *Narrator) TranslateAndSpeak(ctx context.Context, text, targetLanguage, sourceLanguage, voice string) (string, *audio.Clip, error) {
	callID := uuid.NewString()
	n.transition(callID, StateIdle, StateAwaitingStepOne, nil)

	translated, err := n.Translate(ctx, text, targetLanguage, sourceLanguage)
	if err != nil {
		n.transition(callID, StateAwaitingStepOne, StateFailed, err)
		return "", nil, err
	}
	n.transition(callID, StateAwaitingStepOne, StateAwaitingStepTwo, nil)

	clip, err := n.Speak(ctx, translated, voice)
	if err != nil {
		n.transition(callID, StateAwaitingStepTwo, StateFailed, err)
		return translated, nil, err
	}
	n.transition(callID, StateAwaitingStepTwo, StateCompleted, nil)
	return translated, clip, nil
}

// SpeakTo speaks text and, on success, puts the clip into slot.
func (n *Narrator) SpeakTo(ctx context.Context, slot *Slot, text, voice string) (*audio.Clip, error) {
	clip, err := n.Speak(ctx, text, voice)
	if err != nil {
		return nil, err
	}
	slot.Set(clip)
	return clip, nil
}

// TranslateAndSpeakTo is TranslateAndSpeak followed by filling slot.
func (n *Narrator) TranslateAndSpeakTo(ctx context.Context, slot *Slot, text, targetLanguage, sourceLanguage, voice string) (string, *audio.Clip, error) {
	translated, clip, err := n.TranslateAndSpeak(ctx, text, targetLanguage, sourceLanguage, voice)
	if err != nil {
		return translated, nil, err
	}
	slot.Set(clip)
	return translated, clip, nil
}

func (n *Narrator) transition(callID string, from, to State, err error) {
	event := logs.Logger.Debug()
	if to == StateFailed {
		event = logs.Logger.Warn().Err(err)
	}
	event.Str("call_id", callID).Str("from", from.String()).Str("to", to.String()).Msg("translate and speak")
	n.Notify(EventTransition, Transition{CallID: callID, From: from, To: to, Err: err})
}
