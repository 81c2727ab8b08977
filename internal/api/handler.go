// Package api exposes the turn endpoint over HTTP. Transport stays thin:
// decode, transcribe if needed, run the engine, map errors to statuses.
package api

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/oleksii-nakhod/iconicall/internal/apperr"
	"github.com/oleksii-nakhod/iconicall/internal/models"
	"github.com/oleksii-nakhod/iconicall/internal/stt"
)

// TurnRunner runs one interactive turn.
type TurnRunner interface {
	Turn(ctx context.Context, userInput string, history []models.Message, state *models.StoryState) (*models.TurnResponse, error)
}

// TurnHandler bundles dependencies for the turn route.
type TurnHandler struct {
	engine      TurnRunner
	transcriber stt.Transcriber
	development bool
}

// NewTurnHandler builds the handler.
func NewTurnHandler(engine TurnRunner, transcriber stt.Transcriber, development bool) *TurnHandler {
	return &TurnHandler{engine: engine, transcriber: transcriber, development: development}
}

// Register registers routes to app.
func (h *TurnHandler) Register(app *fiber.App) {
	app.Post("/api/chat", h.processTurn)
}

func (h *TurnHandler) processTurn(c *fiber.Ctx) error {
	start := time.Now()

	var req models.TurnRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperr.Wrap(apperr.ErrNoInput, err))
	}
	if req.AudioBase64 == "" && strings.TrimSpace(req.TextInput) == "" {
		return h.fail(c, apperr.ErrNoInput)
	}

	userInput := req.TextInput
	sttMs := 0.0
	if userInput == "" {
		sttStart := time.Now()
		audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			return h.fail(c, apperr.Wrap(apperr.ErrNoInput, err))
		}
		userInput, err = h.transcriber.Transcribe(c.Context(), audio, req.AudioFormat)
		if err != nil {
			return h.fail(c, apperr.Wrap(apperr.ErrEmptyTranscription, err))
		}
		sttMs = float64(time.Since(sttStart).Microseconds()) / 1000
	}
	if strings.TrimSpace(userInput) == "" {
		return h.fail(c, apperr.ErrEmptyTranscription)
	}

	resp, err := h.engine.Turn(c.Context(), userInput, req.ConversationHistory, req.StoryState)
	if err != nil {
		log.Error("turn failed", "elapsed", time.Since(start), "err", err)
		return h.fail(c, err)
	}

	resp.Performance.Breakdown["speech_to_text"] = sttMs
	return c.JSON(resp)
}

// fail maps a turn error onto a status and a short category message.
// Full detail is only exposed in development mode.
func (h *TurnHandler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if apperr.IsInput(err) {
		status = fiber.StatusBadRequest
	}

	body := fiber.Map{"error": categoryMessage(err)}
	if h.development {
		body["details"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

func categoryMessage(err error) string {
	for _, category := range []error{
		apperr.ErrNoInput,
		apperr.ErrEmptyTranscription,
		apperr.ErrMissingReference,
		apperr.ErrGeneration,
		apperr.ErrAudioFailed,
		apperr.ErrImageFailed,
	} {
		if errors.Is(err, category) {
			return category.Error() + ". Please try again."
		}
	}
	return apperr.ErrInternal.Error()
}
