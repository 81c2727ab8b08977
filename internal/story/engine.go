// Package story drives one interactive turn: classify, generate, resolve
// narrators, load references, fan out media synthesis, assemble the scene.
package story

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/oleksii-nakhod/iconicall/internal/llm"
	"github.com/oleksii-nakhod/iconicall/internal/media"
	"github.com/oleksii-nakhod/iconicall/internal/models"
	"github.com/oleksii-nakhod/iconicall/internal/narrators"
	"github.com/oleksii-nakhod/iconicall/internal/scene"
)

// ContentGenerator is the per-turn structured-output contract.
type ContentGenerator interface {
	FirstTurn(ctx context.Context, userInput string, roster []models.NarratorProfile) (*llm.FirstTurnScript, error)
	Continuation(ctx context.Context, userInput string, state models.StoryState, history []models.Message) (*llm.ContinuationScript, error)
}

// BundleLoader loads reference bundles for the turn's narrators.
type BundleLoader interface {
	LoadBundles(profiles []models.NarratorProfile) ([]models.ReferenceBundle, error)
}

// ImageFetcher inlines a remote image reference.
type ImageFetcher func(ctx context.Context, url string) (string, error)

// Engine owns no state between turns; everything a turn needs arrives in
// the call and leaves in the response.
type Engine struct {
	Generator ContentGenerator
	Bundles   BundleLoader
	Images    media.ImageSynthesizer
	Voices    media.VoiceSynthesizer
	FetchURL  ImageFetcher
}

// NewEngine wires an Engine with a default URL fetcher.
func NewEngine(gen ContentGenerator, bundles BundleLoader, images media.ImageSynthesizer, voices media.VoiceSynthesizer) *Engine {
	client := &http.Client{Timeout: 30 * time.Second}
	return &Engine{
		Generator: gen,
		Bundles:   bundles,
		Images:    images,
		Voices:    voices,
		FetchURL: func(ctx context.Context, url string) (string, error) {
			return media.FetchImageBase64(ctx, client, url)
		},
	}
}

// turnScript is the generation output normalized across turn kinds: the
// first turn populates everything, a continuation inherits the stable
// fields from prior state.
type turnScript struct {
	ContentType    string
	NarratorNames  []string
	BookTitle      string
	PlotSummary    string
	CurrentChapter string
	SceneText      string
	Choices        []string
	ImageDesc      string
	ImageDuration  float64
}

// Turn runs one full interaction and returns the assembled scene plus the
// state the caller must echo back next time.
func (e *Engine) Turn(ctx context.Context, userInput string, history []models.Message, state *models.StoryState) (*models.TurnResponse, error) {
	turnID := uuid.NewString()
	logger := log.With("turn", turnID)
	timings := map[string]float64{}
	start := time.Now()

	script, err := e.generate(ctx, logger, timings, userInput, history, state)
	if err != nil {
		return nil, err
	}

	profiles := narrators.ResolveAll(script.NarratorNames)
	if len(profiles) == 0 {
		// A continuation state stripped of its narrator list still gets a voice.
		profiles = []models.NarratorProfile{narrators.Default()}
	}
	names := narrators.Names(profiles)
	lines := scene.Parse(script.SceneText, names)
	logger.Info("scene generated",
		"type", script.ContentType, "title", script.BookTitle,
		"chapter", script.CurrentChapter, "narrators", names, "lines", len(lines))

	// All bundles must be in hand before the audio request can be built;
	// a missing asset aborts here, before any synthesis spend.
	stepStart := time.Now()
	bundles, err := e.Bundles.LoadBundles(profiles)
	timings["load_references"] = ms(stepStart)
	if err != nil {
		return nil, err
	}

	stepStart = time.Now()
	img, audio := media.Fanout(ctx, e.Images, e.Voices,
		media.ImageRequest{
			Description: script.ImageDesc,
			ContentType: script.ContentType,
			BookTitle:   script.BookTitle,
			Chapter:     script.CurrentChapter,
		},
		media.VoiceRequest{
			Bundles:   bundles,
			SceneText: script.SceneText,
		},
	)
	timings["generation_parallel"] = ms(stepStart)
	timings["generation_image"] = float64(img.Elapsed.Milliseconds())
	timings["generation_audio"] = float64(audio.Elapsed.Milliseconds())

	resp, err := e.assemble(ctx, script, names, lines, img, audio, history, userInput)
	if err != nil {
		return nil, err
	}

	timings["total"] = ms(start)
	resp.Performance = models.Performance{TotalMs: timings["total"], Breakdown: timings}
	logger.Info("turn complete", "total_ms", timings["total"])
	return resp, nil
}

// generate runs the classifier and the matching generation call, then
// normalizes the output.
func (e *Engine) generate(ctx context.Context, logger *log.Logger, timings map[string]float64, userInput string, history []models.Message, state *models.StoryState) (*turnScript, error) {
	stepStart := time.Now()
	defer func() { timings["generate_content"] = ms(stepStart) }()

	if IsFirstTurn(state) {
		logger.Info("first turn", "input", userInput)
		first, err := e.Generator.FirstTurn(ctx, userInput, narrators.All())
		if err != nil {
			return nil, err
		}
		return &turnScript{
			ContentType:    first.ContentType,
			NarratorNames:  first.NarratorNames,
			BookTitle:      first.BookTitle,
			PlotSummary:    first.PlotSummary,
			CurrentChapter: first.CurrentChapter,
			SceneText:      first.SceneText,
			Choices:        first.Choices,
			ImageDesc:      first.SceneImage.Description,
			ImageDuration:  first.SceneImage.Duration,
		}, nil
	}

	logger.Info("continuation turn", "title", state.BookTitle, "input", userInput)
	cont, err := e.Generator.Continuation(ctx, userInput, *state, history)
	if err != nil {
		return nil, err
	}
	contentType := state.ContentType
	if contentType == "" {
		contentType = models.ContentBook
	}
	return &turnScript{
		ContentType:    contentType,
		NarratorNames:  state.Narrators,
		BookTitle:      state.BookTitle,
		PlotSummary:    state.PlotSummary,
		CurrentChapter: cont.CurrentChapter,
		SceneText:      cont.SceneText,
		Choices:        cont.Choices,
		ImageDesc:      cont.SceneImage.Description,
		ImageDuration:  cont.SceneImage.Duration,
	}, nil
}

func ms(since time.Time) float64 {
	return float64(time.Since(since).Microseconds()) / 1000
}
