package tutorial

import (
	"fmt"

	"github.com/reusedev/tutor-voice/internal/consts"
)

type Tutorial struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	Number int    `json:"number" yaml:"number"`
	Title  string `json:"title" yaml:"title"`
	Text   string `json:"text" yaml:"text"`
	Image  string `json:"image,omitempty" yaml:"image"`
	Video  string `json:"video,omitempty" yaml:"video"`
}

func (t *Tutorial) StepCount() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

// Step is 0-based.
func (t *Tutorial) Step(index int) (Step, bool) {
	if t == nil || index < 0 || index >= len(t.Steps) {
		return Step{}, false
	}
	return t.Steps[index], true
}

// StepByNumber finds the first step carrying number.
func (t *Tutorial) StepByNumber(number int) (Step, bool) {
	if t == nil {
		return Step{}, false
	}
	for _, s := range t.Steps {
		if s.Number == number {
			return s, true
		}
	}
	return Step{}, false
}

func (t *Tutorial) Titles() []string {
	ret := make([]string, 0, t.StepCount())
	if t == nil {
		return ret
	}
	for _, s := range t.Steps {
		ret = append(ret, s.Title)
	}
	return ret
}

func (t *Tutorial) Texts() []string {
	ret := make([]string, 0, t.StepCount())
	if t == nil {
		return ret
	}
	for _, s := range t.Steps {
		ret = append(ret, s.Text)
	}
	return ret
}

// NarrationText is what gets spoken for step under mode.
func NarrationText(step Step, mode consts.SpeakMode) string {
	switch mode {
	case consts.SpeakTitleOnly:
		return step.Title
	case consts.SpeakBoth:
		if step.Title == "" {
			return step.Text
		}
		if step.Text == "" {
			return step.Title
		}
		return fmt.Sprintf("%s. %s", step.Title, step.Text)
	default:
		return step.Text
	}
}
