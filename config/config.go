package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/reusedev/tutor-voice/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(config []byte) {
	_ = godotenv.Load()
	initFromYaml(config)
	GConfig.applyEnv()
	GConfig.setDefaults()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	GConfig = nil
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
	if GConfig == nil {
		GConfig = &Config{}
	}
}

// Parse reads a config without touching GConfig.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.setDefaults()
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	StorageEnabled  bool   `yaml:"storage_enabled"`
	StorageSupplier string `yaml:"storage_supplier"`
	LocalDir        string `yaml:"local_dir"`
	URLExpires      string `yaml:"url_expires"`
	SessionTTL      string `yaml:"session_ttl"`

	OpenAI    `yaml:"openai"`
	Narration `yaml:"narration"`
	Audio     `yaml:"audio"`
	Tutorials `yaml:"tutorials"`
	AliOss    `yaml:"ali_oss"`
	MySQL     `yaml:"mysql"`
}

func (c *Config) Verify() error {
	if c.OpenAI.BaseURL == "" {
		return fmt.Errorf("openai.base_url must not be empty")
	}
	if c.OpenAI.Timeout != "" {
		if _, err := time.ParseDuration(c.OpenAI.Timeout); err != nil {
			return fmt.Errorf("openai.timeout: %w", err)
		}
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("session_ttl: %w", err)
	}
	if !consts.SpeakMode(c.Narration.SpeakMode).Valid() {
		return fmt.Errorf("narration.speak_mode must be one of title, text, both")
	}
	if !c.StorageEnabled {
		return nil
	}
	switch consts.StorageSupplier(c.StorageSupplier) {
	case consts.StorageLocal:
		if c.LocalDir == "" {
			return fmt.Errorf("local_dir must be set when storage_supplier is local")
		}
	case consts.StorageAliOss:
		if c.AliOss.Bucket == "" {
			return fmt.Errorf("ali_oss.bucket must be set when storage_supplier is ali_oss")
		}
	default:
		return fmt.Errorf("storage_supplier must be local or ali_oss")
	}
	_, err := time.ParseDuration(c.URLExpires)
	if err != nil {
		return err
	}
	return nil
}

// applyEnv lets secrets stay out of the yaml file.
func (c *Config) applyEnv() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.OpenAI.APIKey = key
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" {
		c.OpenAI.BaseURL = url
	}
}

func (c *Config) setDefaults() {
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = consts.OpenAIBaseURL
	}
	if c.OpenAI.TranslationModel == "" {
		c.OpenAI.TranslationModel = "gpt-4o-mini"
	}
	if c.OpenAI.TTSModel == "" {
		c.OpenAI.TTSModel = "tts-1"
	}
	if c.OpenAI.TTSVoice == "" {
		c.OpenAI.TTSVoice = "alloy"
	}
	if c.Narration.DefaultTargetLanguage == "" {
		c.Narration.DefaultTargetLanguage = "Spanish"
	}
	if c.Narration.DefaultSourceLanguage == "" {
		c.Narration.DefaultSourceLanguage = "English"
	}
	if c.Narration.SpeakMode == "" {
		c.Narration.SpeakMode = consts.SpeakTextOnly.String()
	}
	if c.Audio.TempDir == "" {
		c.Audio.TempDir = os.TempDir()
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "30m"
	}
	if c.StorageEnabled && c.URLExpires == "" {
		c.URLExpires = "24h"
	}
}

func (c *Config) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

func (c *Config) URLExpiresDuration() time.Duration {
	d, _ := time.ParseDuration(c.URLExpires)
	return d
}

type OpenAI struct {
	BaseURL          string `yaml:"base_url"`
	APIKey           string `yaml:"api_key"`
	TranslationModel string `yaml:"translation_model"`
	TTSModel         string `yaml:"tts_model"`
	TTSVoice         string `yaml:"tts_voice"`
	Timeout          string `yaml:"timeout"`
}

// IsConfigured reports whether an API key is present.
func (o OpenAI) IsConfigured() bool {
	return o.APIKey != ""
}

func (o OpenAI) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(o.Timeout)
	return d
}

type Narration struct {
	DefaultTargetLanguage string `yaml:"default_target_language"`
	DefaultSourceLanguage string `yaml:"default_source_language"`
	SpeakMode             string `yaml:"speak_mode"`
}

type Audio struct {
	TempDir string `yaml:"temp_dir"`
}

type Tutorials struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Enabled      bool   `yaml:"enabled"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}
