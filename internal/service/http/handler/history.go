package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/request"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/response"
)

const defaultHistoryLimit = 20

func (h *Handler) RecentHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, response.NotFoundWithMessage("history is disabled"))
		return
	}
	query := &request.History{}
	if err := c.ShouldBindQuery(query); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultHistoryLimit
	}
	ret, err := h.history.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		abortWithError(c, err, "history-RecentHistory")
		return
	}
	c.JSON(http.StatusOK, ret)
}
