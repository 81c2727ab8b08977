package main

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/oleksii-nakhod/iconicall/internal/api"
	"github.com/oleksii-nakhod/iconicall/internal/config"
	"github.com/oleksii-nakhod/iconicall/internal/llm"
	"github.com/oleksii-nakhod/iconicall/internal/media"
	"github.com/oleksii-nakhod/iconicall/internal/story"
	"github.com/oleksii-nakhod/iconicall/internal/stt"
	"github.com/oleksii-nakhod/iconicall/internal/voice"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if cfg.Development {
		log.SetLevel(log.DebugLevel)
	}

	engine := story.NewEngine(
		llm.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMModel),
		voice.NewStore(cfg.RefAudioDir),
		media.NewOpenAIImages(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.TTIModel),
		media.NewHiggsVoice(cfg.BosonAPIKey, cfg.BosonBaseURL, cfg.VoiceModel),
	)
	transcriber := stt.NewOpenAITranscriber(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.STTModel)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // recorded audio arrives inline as base64
	})
	app.Use(recover.New())

	api.NewTurnHandler(engine, transcriber, cfg.Development).Register(app)

	log.Info("narration engine listening", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
