package speech

import (
	jsoniter "github.com/json-iterator/go"
	openai "github.com/sashabaranov/go-openai"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Request struct {
	Model string
	Input string
	Voice string
}

func (r *Request) Body() ([]byte, error) {
	return json.Marshal(openai.CreateSpeechRequest{
		Model: openai.SpeechModel(r.Model),
		Input: r.Input,
		Voice: openai.SpeechVoice(r.Voice),
	})
}
