package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/request"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/response"
)

func (h *Handler) Translate(c *gin.Context) {
	req := &request.Translate{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	text, err := h.narrator.Translate(c.Request.Context(), req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		abortWithError(c, err, "narration-Translate")
		return
	}
	c.JSON(http.StatusOK, response.Translation{TranslatedText: text})
}

func (h *Handler) Speech(c *gin.Context) {
	req := &request.Speech{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	clip, err := h.narrator.Speak(c.Request.Context(), req.Text, req.Voice)
	if err != nil {
		abortWithError(c, err, "narration-Speech")
		return
	}
	ret, err := h.publish(c.Request.Context(), clip)
	if err != nil {
		abortWithError(c, err, "narration-Speech")
		return
	}
	c.JSON(http.StatusOK, ret)
}

func (h *Handler) TranslateSpeech(c *gin.Context) {
	req := &request.TranslateSpeech{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	text, clip, err := h.narrator.TranslateAndSpeak(c.Request.Context(), req.Text, req.TargetLanguage, req.SourceLanguage, req.Voice)
	if err != nil {
		abortWithError(c, err, "narration-TranslateSpeech")
		return
	}
	ret, err := h.publish(c.Request.Context(), clip)
	if err != nil {
		abortWithError(c, err, "narration-TranslateSpeech")
		return
	}
	c.JSON(http.StatusOK, response.TranslateSpeech{TranslatedText: text, Clip: ret})
}

func (h *Handler) GetClip(c *gin.Context) {
	clip, err := h.clips.GetValue(c.Param("id"))
	if err != nil {
		abortWithError(c, err, "narration-GetClip")
		return
	}
	if clip == nil {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	c.Data(http.StatusOK, clip.Format.ContentType(), clip.Data)
}
