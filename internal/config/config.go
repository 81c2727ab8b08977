// Package config loads service configuration from the environment.
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the service reads at startup.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8000"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	BosonAPIKey   string `env:"BOSON_API_KEY"`
	BosonBaseURL  string `env:"BOSON_BASE_URL" envDefault:"https://hackathon.boson.ai/v1"`

	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-4o"`
	STTModel   string `env:"STT_MODEL" envDefault:"whisper-1"`
	TTIModel   string `env:"TTI_MODEL" envDefault:"dall-e-3"`
	VoiceModel string `env:"VOICE_MODEL" envDefault:"higgs-audio-generation-Hackathon"`

	RefAudioDir string `env:"REF_AUDIO_DIR" envDefault:"public/ref-audio"`

	Development bool `env:"DEVELOPMENT" envDefault:"false"`
}

// Load parses the environment into a Config and checks required keys.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.OpenAIAPIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is not set")
	}
	if cfg.BosonAPIKey == "" {
		return Config{}, errors.New("BOSON_API_KEY is not set")
	}
	return cfg, nil
}
