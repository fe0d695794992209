package request

type CreateSession struct {
	TutorialID     string `json:"tutorial_id" binding:"required"`
	SpeakMode      string `json:"speak_mode"`
	Voice          string `json:"voice"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

type StepURI struct {
	ID     string `uri:"id" binding:"required"`
	Number int    `uri:"number" binding:"required,min=1"`
}

type Thumbnail struct {
	Ratio float64 `form:"ratio"`
}

type History struct {
	Limit int `form:"limit" binding:"min=0,max=200"`
}
