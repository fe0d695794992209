package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusedev/tutor-voice/config"
	"github.com/reusedev/tutor-voice/internal/components/mysql"
	"github.com/reusedev/tutor-voice/internal/consts"
	"github.com/reusedev/tutor-voice/internal/modules/ai"
	"github.com/reusedev/tutor-voice/internal/modules/ai/chat"
	"github.com/reusedev/tutor-voice/internal/modules/ai/speech"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
	"github.com/reusedev/tutor-voice/internal/modules/cache"
	"github.com/reusedev/tutor-voice/internal/modules/dao"
	"github.com/reusedev/tutor-voice/internal/modules/http_client"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/internal/modules/narrator"
	"github.com/reusedev/tutor-voice/internal/modules/observer"
	"github.com/reusedev/tutor-voice/internal/modules/session"
	"github.com/reusedev/tutor-voice/internal/modules/storage"
	"github.com/reusedev/tutor-voice/internal/modules/storage/ali"
	"github.com/reusedev/tutor-voice/internal/modules/tutorial"
	"github.com/reusedev/tutor-voice/internal/service/http"
	"github.com/reusedev/tutor-voice/internal/service/http/handler"
	"github.com/reusedev/tutor-voice/tools"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(tools.PanicOnError(tools.ReadFile(configPath)))
	logs.InitLogger(config.GConfig)
	cfg := config.GConfig

	ctx, cancel := context.WithCancel(context.Background())
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
	}(osSignal)

	var (
		recorder ai.Recorder
		history  handler.History
	)
	if cfg.MySQL.Enabled {
		mysql.InitMySQL(cfg.MySQL)
		r := dao.NewHistoryRecorder(mysql.DB)
		recorder, history = r, r
	}
	if !cfg.OpenAI.IsConfigured() {
		logs.Logger.Warn().Msg("openai api key is not configured, every narration call will fail")
	}

	client := ai.NewClient(cfg.OpenAI.BaseURL, http_client.NewWithTimeout(cfg.OpenAI.TimeoutDuration()), recorder)
	n := narrator.New(
		chat.NewTranslator(client, cfg.OpenAI.APIKey, cfg.OpenAI.TranslationModel),
		speech.NewSynthesizer(client, audio.NewExtractor(cfg.Audio.TempDir, nil), cfg.OpenAI.APIKey, cfg.OpenAI.TTSModel, cfg.OpenAI.TTSVoice),
		narrator.Options{
			DefaultTargetLanguage: cfg.Narration.DefaultTargetLanguage,
			DefaultSourceLanguage: cfg.Narration.DefaultSourceLanguage,
		},
	)
	n.Attach(observer.Func(func(event string, data interface{}) {
		t, ok := data.(narrator.Transition)
		if !ok || !t.To.Terminal() {
			return
		}
		logs.Logger.Info().Str("event", event).Str("call_id", t.CallID).Str("state", t.To.String()).Msg("narration finished")
	}))

	catalog := tutorial.NewCatalog(cfg.Tutorials.Dir)
	if cfg.Tutorials.Dir != "" {
		catalog = tools.PanicOnError(tutorial.LoadCatalog(cfg.Tutorials.Dir))
		if cfg.Tutorials.Watch {
			if err := catalog.Watch(ctx); err != nil {
				logs.Logger.Err(err).Msg("watch tutorials")
			}
		}
	}

	h := handler.New(handler.Options{
		Narrator:  n,
		Catalog:   catalog,
		Sessions:  session.NewStore(cfg.SessionTTLDuration()),
		Clips:     cache.NewManager[*audio.Clip](cfg.SessionTTLDuration()),
		Archiver:  newArchiver(cfg),
		History:   history,
		SpeakMode: consts.SpeakMode(cfg.Narration.SpeakMode),
	})
	if err := http.Serve(ctx, httpPort, h); err != nil {
		logs.Logger.Fatal().Err(err).Msg("http server")
	}
}

func newArchiver(cfg *config.Config) storage.Archiver {
	if !cfg.StorageEnabled {
		return nil
	}
	switch consts.StorageSupplier(cfg.StorageSupplier) {
	case consts.StorageLocal:
		return &storage.LocalArchiver{Dir: cfg.LocalDir}
	case consts.StorageAliOss:
		return ali.NewOSS(cfg.AliOss, cfg.URLExpiresDuration())
	}
	return nil
}
