package chat

import (
	"context"

	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
)

type Translator struct {
	dispatcher ai.Dispatcher
	credential string
	model      string
}

func NewTranslator(dispatcher ai.Dispatcher, credential, model string) *Translator {
	return &Translator{
		dispatcher: dispatcher,
		credential: credential,
		model:      model,
	}
}

// Translate sends one chat-completion request and extracts the translated text.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) (string, error) {
	if text == "" {
		return "", ai.NewError(ai.KindInput, "Text to translate is empty")
	}
	req := &TranslationRequest{
		Model:          t.model,
		Text:           text,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}
	body, err := req.Body()
	if err != nil {
		return "", ai.Errorf(ai.KindConfiguration, "build translation request: %w", err)
	}
	raw, err := t.dispatcher.Post(ctx, ai.Descriptor{
		Path:       consts.ChatCompletions.String(),
		Body:       body,
		Credential: t.credential,
		Model:      t.model,
	})
	if err != nil {
		return "", err
	}
	translated, err := ExtractContent(raw)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("body", string(raw)).Msg("translation response")
		return "", err
	}
	return translated, nil
}
