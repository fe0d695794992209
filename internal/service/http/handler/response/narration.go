package response

import (
	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/session"
)

type Translation struct {
	TranslatedText string `json:"translated_text"`
}

type Clip struct {
	*audio.Clip
	URL        string `json:"url"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

type TranslateSpeech struct {
	TranslatedText string `json:"translated_text"`
	Clip           Clip   `json:"clip"`
}

type Tutorial struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StepCount int    `json:"step_count"`
}

type Navigate struct {
	Moved   bool         `json:"moved"`
	Session session.View `json:"session"`
}
