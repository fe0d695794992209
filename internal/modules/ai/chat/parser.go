package chat

import (
	"strings"

	"github.com/reusedev/tutor-voice/internal/modules/ai"
	openai "github.com/sashabaranov/go-openai"
)

const errInvalidFormat = "Invalid response format from API"

// ExtractContent returns choices[0].message.content of a chat-completion body,
// unescaped and trimmed. Anything short of a non-empty string there is a parse error.
func ExtractContent(raw []byte) (string, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", ai.Errorf(ai.KindParse, "Failed to parse response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ai.NewError(ai.KindParse, errInvalidFormat)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ai.NewError(ai.KindParse, errInvalidFormat)
	}
	return content, nil
}
