// Package llm produces the next narration unit through a structured-output
// generation call. The schema differs between first and continuation turns.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/oleksii-nakhod/iconicall/internal/apperr"
	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// ScriptImage is the generator's illustration request: what to draw and how
// long the client should display it.
type ScriptImage struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
}

// FirstTurnScript is the generation output when no story exists yet.
type FirstTurnScript struct {
	ContentType    string      `json:"content_type"`
	NarratorNames  []string    `json:"narrator_names"`
	BookTitle      string      `json:"book_title"`
	PlotSummary    string      `json:"plot_summary"`
	CurrentChapter string      `json:"current_chapter"`
	SceneText      string      `json:"scene_text"`
	Choices        []string    `json:"choices"`
	SceneImage     ScriptImage `json:"scene_image"`
}

// ContinuationScript is the generation output when extending an
// established story; title, summary and narrators carry over unchanged.
type ContinuationScript struct {
	CurrentChapter string      `json:"current_chapter"`
	SceneText      string      `json:"scene_text"`
	Choices        []string    `json:"choices"`
	SceneImage     ScriptImage `json:"scene_image"`
}

// Generator issues one structured-output call per turn.
type Generator struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewGenerator builds a Generator with a shared HTTP client.
func NewGenerator(apiKey, baseURL, model string) *Generator {
	return &Generator{
		APIKey:  apiKey,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		Client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// FirstTurn asks for a fresh story or lesson: content type, one to three
// narrators in speaker order, title, summary, opening scene and choices.
func (g *Generator) FirstTurn(ctx context.Context, userInput string, roster []models.NarratorProfile) (*FirstTurnScript, error) {
	prompt := buildFirstTurnPrompt(userInput, roster)

	raw, err := g.call(ctx, prompt, firstTurnSchema())
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrGeneration, err)
	}

	var script FirstTurnScript
	if err := json.Unmarshal(raw, &script); err != nil {
		return nil, apperr.Wrapf(apperr.ErrGeneration, "malformed first-turn output: %v", err)
	}
	if err := script.validate(); err != nil {
		return nil, apperr.Wrap(apperr.ErrGeneration, err)
	}
	return &script, nil
}

// Continuation extends an established story with the user's latest choice.
func (g *Generator) Continuation(ctx context.Context, userInput string, state models.StoryState, history []models.Message) (*ContinuationScript, error) {
	prompt := buildContinuationPrompt(userInput, state, history)

	raw, err := g.call(ctx, prompt, continuationSchema())
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrGeneration, err)
	}

	var script ContinuationScript
	if err := json.Unmarshal(raw, &script); err != nil {
		return nil, apperr.Wrapf(apperr.ErrGeneration, "malformed continuation output: %v", err)
	}
	if err := script.validate(); err != nil {
		return nil, apperr.Wrap(apperr.ErrGeneration, err)
	}
	return &script, nil
}

func (s *FirstTurnScript) validate() error {
	if s.ContentType != models.ContentBook && s.ContentType != models.ContentLearning {
		return fmt.Errorf("unexpected content_type %q", s.ContentType)
	}
	if len(s.NarratorNames) < 1 || len(s.NarratorNames) > 3 {
		return fmt.Errorf("expected 1-3 narrators, got %d", len(s.NarratorNames))
	}
	if s.BookTitle == "" {
		return errors.New("missing book_title")
	}
	return validateScene(s.SceneText, s.Choices, s.SceneImage)
}

func (s *ContinuationScript) validate() error {
	if s.CurrentChapter == "" {
		return errors.New("missing current_chapter")
	}
	return validateScene(s.SceneText, s.Choices, s.SceneImage)
}

func validateScene(text string, choices []string, img ScriptImage) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("missing scene_text")
	}
	if len(choices) < 2 {
		return fmt.Errorf("expected at least 2 choices, got %d", len(choices))
	}
	if strings.TrimSpace(img.Description) == "" {
		return errors.New("missing scene_image.description")
	}
	return nil
}

// call sends one responses request with the declared output schema and
// returns the raw JSON text the model produced.
func (g *Generator) call(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	payload := map[string]any{
		"model": g.Model,
		"input": prompt,
		"text": map[string]any{
			"format": map[string]any{
				"type":   "json_schema",
				"name":   "generate_interactive_content",
				"schema": schema,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation backend returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}

	var text string
	for _, out := range parsed.Output {
		if out.Type != "message" {
			continue
		}
		for _, c := range out.Content {
			if c.Type == "output_text" {
				text += c.Text
			}
		}
	}
	if text == "" {
		return nil, errors.New("no output text from generation backend")
	}

	log.Debug("generation output", "chars", len(text))
	return []byte(stripFences(text)), nil
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
