package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/session"
	"github.com/reusedev/tutor-voice/internal/modules/tutorial"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/request"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/response"
)

func (h *Handler) CreateSession(c *gin.Context) {
	req := &request.CreateSession{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	mode := h.speakMode
	if req.SpeakMode != "" {
		mode = consts.SpeakMode(req.SpeakMode)
		if !mode.Valid() {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("speak_mode must be one of title, text, both"))
			return
		}
	}
	t, ok := h.catalog.Get(req.TutorialID)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(tutorial.ErrTutorialNotFound.Error()))
		return
	}
	s := session.New(t, session.Options{
		SpeakMode:      mode,
		Voice:          req.Voice,
		TargetLanguage: req.TargetLanguage,
		SourceLanguage: req.SourceLanguage,
	})
	if err := h.sessions.Put(s); err != nil {
		abortWithError(c, err, "session-CreateSession")
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// loadSession writes the error response itself and returns nil when the session is unusable.
func (h *Handler) loadSession(c *gin.Context) *session.Session {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err, "session-load")
		return nil
	}
	if s == nil {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage("session not found"))
		return nil
	}
	return s
}

func (h *Handler) GetSession(c *gin.Context) {
	s := h.loadSession(c)
	if s == nil {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

func (h *Handler) DeleteSession(c *gin.Context) {
	s := h.loadSession(c)
	if s == nil {
		return
	}
	s.StopSpeaking()
	if err := h.sessions.Delete(s.ID); err != nil {
		abortWithError(c, err, "session-DeleteSession")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Navigate(move session.Move) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := h.loadSession(c)
		if s == nil {
			return
		}
		moved := s.Navigate(move)
		c.JSON(http.StatusOK, response.Navigate{Moved: moved, Session: s.View()})
	}
}

func (h *Handler) SpeakStep(c *gin.Context) {
	s := h.loadSession(c)
	if s == nil {
		return
	}
	clip, err := s.SpeakCurrent(c.Request.Context(), h.narrator)
	if err != nil {
		if errors.Is(err, session.ErrNothingToSpeak) {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
			return
		}
		abortWithError(c, err, "session-SpeakStep")
		return
	}
	ret, err := h.publish(c.Request.Context(), clip)
	if err != nil {
		abortWithError(c, err, "session-SpeakStep")
		return
	}
	c.JSON(http.StatusOK, ret)
}

func (h *Handler) StopSpeaking(c *gin.Context) {
	s := h.loadSession(c)
	if s == nil {
		return
	}
	s.StopSpeaking()
	c.JSON(http.StatusOK, s.View())
}

func (h *Handler) SessionAudio(c *gin.Context) {
	s := h.loadSession(c)
	if s == nil {
		return
	}
	clip := s.Audio()
	if clip == nil {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage("nothing is speaking"))
		return
	}
	c.Data(http.StatusOK, clip.Format.ContentType(), clip.Data)
}
