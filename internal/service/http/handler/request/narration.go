package request

type Translate struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

type Speech struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
}

type TranslateSpeech struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
	Voice          string `json:"voice"`
}
