package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/cache"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/model"
	"github.com/reusedev/tutor-voice/internal/modules/narrator"
	"github.com/reusedev/tutor-voice/internal/modules/session"
	"github.com/reusedev/tutor-voice/internal/modules/storage"
	"github.com/reusedev/tutor-voice/internal/modules/tutorial"
	"github.com/reusedev/tutor-voice/internal/service/http/handler/response"
)

const clipPath = "/v1/clips/"

type History interface {
	Recent(ctx context.Context, limit int) ([]model.InvokeHistory, error)
}

type Options struct {
	Narrator  *narrator.Narrator
	Catalog   *tutorial.Catalog
	Sessions  *session.Store
	Clips     *cache.Manager[*audio.Clip]
	Archiver  storage.Archiver
	History   History
	SpeakMode consts.SpeakMode
}

// Handler serves every route. Archiver and History are optional.
type Handler struct {
	narrator  *narrator.Narrator
	catalog   *tutorial.Catalog
	sessions  *session.Store
	clips     *cache.Manager[*audio.Clip]
	archiver  storage.Archiver
	history   History
	speakMode consts.SpeakMode
}

func New(opts Options) *Handler {
	if !opts.SpeakMode.Valid() {
		opts.SpeakMode = consts.SpeakTextOnly
	}
	return &Handler{
		narrator:  opts.Narrator,
		catalog:   opts.Catalog,
		sessions:  opts.Sessions,
		clips:     opts.Clips,
		archiver:  opts.Archiver,
		history:   opts.History,
		speakMode: opts.SpeakMode,
	}
}

// publish makes a clip downloadable and archives it when storage is enabled.
// An archive failure only costs the archive URL.
func (h *Handler) publish(ctx context.Context, clip *audio.Clip) (response.Clip, error) {
	ret := response.Clip{Clip: clip, URL: clipPath + clip.ID}
	if err := h.clips.Set(clip.ID, clip); err != nil {
		return ret, err
	}
	if h.archiver == nil {
		return ret, nil
	}
	url, err := h.archiver.Archive(ctx, clip)
	if err != nil {
		logs.Logger.Err(err).Str("clip", clip.ID).Msg("archive clip")
		return ret, nil
	}
	ret.ArchiveURL = url
	return ret, nil
}

func abortWithError(c *gin.Context, err error, action string) {
	var aiErr *ai.Error
	if errors.As(err, &aiErr) {
		logs.Logger.Warn().Err(err).Str("kind", aiErr.Kind.String()).Msg(action)
		if aiErr.Kind == ai.KindInput {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(aiErr.Message))
			return
		}
		c.JSON(http.StatusBadGateway, response.UpstreamError(aiErr.Message))
		return
	}
	logs.Logger.Err(err).Msg(action)
	c.JSON(http.StatusInternalServerError, response.InternalError)
}
