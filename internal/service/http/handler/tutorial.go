package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/modules/tutorial"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/request"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/response"
)

const defaultThumbnailRatio = 0.5

func (h *Handler) ListTutorials(c *gin.Context) {
	list := h.catalog.List()
	ret := make([]response.Tutorial, 0, len(list))
	for _, t := range list {
		ret = append(ret, response.Tutorial{ID: t.ID, Title: t.Title, StepCount: t.StepCount()})
	}
	c.JSON(http.StatusOK, ret)
}

func (h *Handler) GetTutorial(c *gin.Context) {
	t, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(tutorial.ErrTutorialNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) TutorialTitles(c *gin.Context) {
	t, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(tutorial.ErrTutorialNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, t.Titles())
}

func (h *Handler) TutorialTexts(c *gin.Context) {
	t, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(tutorial.ErrTutorialNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, t.Texts())
}

func (h *Handler) GetStep(c *gin.Context) {
	uri := &request.StepURI{}
	if err := c.ShouldBindUri(uri); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	step, ok := h.catalog.StepByNumber(uri.ID, uri.Number)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage(tutorial.ErrStepNotFound.Error()))
		return
	}
	c.JSON(http.StatusOK, step)
}

func (h *Handler) StepThumbnail(c *gin.Context) {
	uri := &request.StepURI{}
	if err := c.ShouldBindUri(uri); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	query := &request.Thumbnail{}
	if err := c.ShouldBindQuery(query); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if query.Ratio == 0 {
		query.Ratio = defaultThumbnailRatio
	}
	if query.Ratio < 0 || query.Ratio > 1 {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("ratio must be in (0, 1]"))
		return
	}
	data, err := h.catalog.StepThumbnail(uri.ID, uri.Number, query.Ratio)
	if err != nil {
		if errors.Is(err, tutorial.ErrTutorialNotFound) || errors.Is(err, tutorial.ErrStepNotFound) || errors.Is(err, tutorial.ErrNoImage) {
			c.JSON(http.StatusNotFound, response.NotFoundWithMessage(err.Error()))
			return
		}
		abortWithError(c, err, "tutorial-StepThumbnail")
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}
