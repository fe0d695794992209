package consts

const (
	OpenAIBaseURL = "https://api.openai.com/v1"
)

type Endpoint string

const (
	ChatCompletions Endpoint = "chat/completions"
	AudioSpeech     Endpoint = "audio/speech"
)

func (e Endpoint) String() string {
	return string(e)
}

type SpeakMode string

const (
	SpeakTitleOnly SpeakMode = "title"
	SpeakTextOnly  SpeakMode = "text"
	SpeakBoth      SpeakMode = "both"
)

func (m SpeakMode) String() string {
	return string(m)
}

func (m SpeakMode) Valid() bool {
	switch m {
	case SpeakTitleOnly, SpeakTextOnly, SpeakBoth:
		return true
	}
	return false
}

type StorageSupplier string

const (
	StorageLocal  StorageSupplier = "local"
	StorageAliOss StorageSupplier = "ali_oss"
)

func (s StorageSupplier) String() string {
	return string(s)
}
