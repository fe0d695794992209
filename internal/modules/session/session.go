package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/narrator"
	"github.com/reusedev/tutor-voice/internal/modules/tutorial"
)

var ErrNothingToSpeak = errors.New("no text to speak for this step")

// Session is one viewer walking through a tutorial with narration.
type Session struct {
	ID             string
	SpeakMode      consts.SpeakMode
	Voice          string
	TargetLanguage string
	SourceLanguage string
	CreatedAt      time.Time

	lock   sync.Mutex
	cursor *tutorial.Cursor
	slot   narrator.Slot
}

type Options struct {
	SpeakMode      consts.SpeakMode
	Voice          string
	TargetLanguage string
	SourceLanguage string
}

func New(t *tutorial.Tutorial, opts Options) *Session {
	if !opts.SpeakMode.Valid() {
		opts.SpeakMode = consts.SpeakTextOnly
	}
	return &Session{
		ID:             uuid.NewString(),
		SpeakMode:      opts.SpeakMode,
		Voice:          opts.Voice,
		TargetLanguage: opts.TargetLanguage,
		SourceLanguage: opts.SourceLanguage,
		CreatedAt:      time.Now(),
		cursor:         tutorial.NewCursor(t),
	}
}

type Move string

const (
	MoveNext     Move = "next"
	MovePrevious Move = "previous"
	MoveFirst    Move = "first"
	MoveLast     Move = "last"
)

func (m Move) Valid() bool {
	switch m {
	case MoveNext, MovePrevious, MoveFirst, MoveLast:
		return true
	}
	return false
}

// Navigate moves the cursor. A successful move stops the current speech.
func (s *Session) Navigate(m Move) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	var moved bool
	switch m {
	case MoveNext:
		moved = s.cursor.Next()
	case MovePrevious:
		moved = s.cursor.Previous()
	case MoveFirst:
		moved = s.cursor.First()
	case MoveLast:
		moved = s.cursor.Last()
	}
	if moved {
		s.slot.Stop()
	}
	return moved
}

// SpeakCurrent narrates the current step into the session slot, translating
// first when the session has a target language.
func (s *Session) SpeakCurrent(ctx context.Context, n *narrator.Narrator) (*audio.Clip, error) {
	s.lock.Lock()
	step, ok := s.cursor.Current()
	index := s.cursor.Index()
	s.lock.Unlock()
	if !ok {
		return nil, ErrNothingToSpeak
	}
	text := tutorial.NarrationText(step, s.SpeakMode)
	if text == "" {
		logs.Logger.Warn().Str("session", s.ID).Int("step", index+1).Msg("no text to speak for this step")
		return nil, ErrNothingToSpeak
	}
	s.slot.Stop()
	var clip *audio.Clip
	var err error
	if s.TargetLanguage != "" {
		_, clip, err = n.TranslateAndSpeakTo(ctx, &s.slot, text, s.TargetLanguage, s.SourceLanguage, s.Voice)
	} else {
		clip, err = n.SpeakTo(ctx, &s.slot, text, s.Voice)
	}
	if err != nil {
		logs.Logger.Err(err).Str("session", s.ID).Int("step", index+1).Msg("speak step")
		return nil, err
	}
	logs.Logger.Info().Str("session", s.ID).Int("step", index+1).Dur("clip_duration", clip.Duration).Msg("speaking step")
	return clip, nil
}

func (s *Session) StopSpeaking() {
	s.slot.Stop()
}

func (s *Session) Audio() *audio.Clip {
	return s.slot.Current()
}

// View is a point-in-time copy of the session for callers outside this package.
type View struct {
	ID             string         `json:"id"`
	TutorialID     string         `json:"tutorial_id"`
	Title          string         `json:"title"`
	SpeakMode      string         `json:"speak_mode"`
	Voice          string         `json:"voice,omitempty"`
	TargetLanguage string         `json:"target_language,omitempty"`
	StepIndex      int            `json:"step_index"`
	TotalSteps     int            `json:"total_steps"`
	HasNext        bool           `json:"has_next"`
	HasPrevious    bool           `json:"has_previous"`
	Step           *tutorial.Step `json:"step,omitempty"`
	Speaking       bool           `json:"speaking"`
	ClipID         string         `json:"clip_id,omitempty"`
}

func (s *Session) View() View {
	s.lock.Lock()
	defer s.lock.Unlock()
	t := s.cursor.Tutorial()
	v := View{
		ID:             s.ID,
		SpeakMode:      s.SpeakMode.String(),
		Voice:          s.Voice,
		TargetLanguage: s.TargetLanguage,
		StepIndex:      s.cursor.Index(),
		TotalSteps:     s.cursor.Total(),
		HasNext:        s.cursor.HasNext(),
		HasPrevious:    s.cursor.HasPrevious(),
		Speaking:       s.slot.Speaking(),
	}
	if t != nil {
		v.TutorialID = t.ID
		v.Title = t.Title
	}
	if step, ok := s.cursor.Current(); ok {
		v.Step = &step
	}
	if clip := s.slot.Current(); clip != nil {
		v.ClipID = clip.ID
	}
	return v
}
