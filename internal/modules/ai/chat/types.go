package chat

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	openai "github.com/sashabaranov/go-openai"
)

const (
	translationTemperature = 0.3
	translationMaxTokens   = 1000
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TranslationRequest is the chat-completion body for one translation.
type TranslationRequest struct {
	Model          string
	Text           string
	SourceLanguage string
	TargetLanguage string
}

func (t *TranslationRequest) Prompt() string {
	return fmt.Sprintf("Translate the following text from %s to %s. Only return the translated text, nothing else:\n\n%s",
		t.SourceLanguage, t.TargetLanguage, t.Text)
}

func (t *TranslationRequest) Body() ([]byte, error) {
	return json.Marshal(openai.ChatCompletionRequest{
		Model: t.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: t.Prompt()},
		},
		Temperature: translationTemperature,
		MaxTokens:   translationMaxTokens,
	})
}
