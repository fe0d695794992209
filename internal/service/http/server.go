package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/session"
	"github.com/reusedev/tutor-voice/internal/service/http/handler"
	"github.com/reusedev/tutor-voice/internal/service/http/middleware"
)

const shutdownTimeout = 5 * time.Second

// Serve blocks until ctx is done or the listener fails.
func Serve(ctx context.Context, port string, h *handler.Handler) error {
	srv := &http.Server{Addr: port, Handler: NewEngine(h)}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", port).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func NewEngine(h *handler.Handler) *gin.Engine {
	e := gin.New()
	initRouter(e, h)
	return e
}

func initRouter(e *gin.Engine, h *handler.Handler) {
	e.Use(gin.Recovery(), middleware.RequestLogger())
	v1 := e.Group("/v1")
	{
		v1.POST("/translate", h.Translate)
		v1.POST("/speech", h.Speech)
		v1.POST("/translate-speech", h.TranslateSpeech)
		v1.GET("/clips/:id", h.GetClip)
		v1.GET("/history", h.RecentHistory)
	}
	tutorials := v1.Group("/tutorials")
	{
		tutorials.GET("", h.ListTutorials)
		tutorials.GET("/:id", h.GetTutorial)
		tutorials.GET("/:id/titles", h.TutorialTitles)
		tutorials.GET("/:id/texts", h.TutorialTexts)
		tutorials.GET("/:id/steps/:number", h.GetStep)
		tutorials.GET("/:id/steps/:number/thumbnail", h.StepThumbnail)
	}
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/next", h.Navigate(session.MoveNext))
		sessions.POST("/:id/previous", h.Navigate(session.MovePrevious))
		sessions.POST("/:id/first", h.Navigate(session.MoveFirst))
		sessions.POST("/:id/last", h.Navigate(session.MoveLast))
		sessions.POST("/:id/speak", h.SpeakStep)
		sessions.DELETE("/:id/speech", h.StopSpeaking)
		sessions.GET("/:id/audio", h.SessionAudio)
	}
}
