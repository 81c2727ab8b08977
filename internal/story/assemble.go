package story

import (
	"context"

	"github.com/oleksii-nakhod/iconicall/internal/apperr"
	"github.com/oleksii-nakhod/iconicall/internal/media"
	"github.com/oleksii-nakhod/iconicall/internal/models"
	"github.com/oleksii-nakhod/iconicall/internal/scene"
)

// defaultImageDuration is used when the generator suggested none.
const defaultImageDuration = 8.0

// assemble merges the branch outcomes with the narration into the turn's
// response. Audio first: a turn without audio is dead. The image may arrive
// inline or as a reference that still needs one fetch.
func (e *Engine) assemble(ctx context.Context, script *turnScript, names []string, lines []models.SceneLine, img media.ImageOutcome, audio media.AudioOutcome, history []models.Message, userInput string) (*models.TurnResponse, error) {
	if !audio.OK || audio.Base64 == "" {
		return nil, apperr.Wrap(apperr.ErrAudioFailed, audio.Err)
	}

	imageBase64 := ""
	if img.OK {
		imageBase64 = img.Base64
		if imageBase64 == "" && img.URL != "" {
			fetched, err := e.FetchURL(ctx, img.URL)
			if err != nil {
				return nil, apperr.Wrap(apperr.ErrImageFailed, err)
			}
			imageBase64 = fetched
		}
	}
	if imageBase64 == "" {
		return nil, apperr.Wrap(apperr.ErrImageFailed, img.Err)
	}

	duration := script.ImageDuration
	if duration <= 0 {
		duration = defaultImageDuration
	}

	newHistory := append(append([]models.Message{}, history...),
		models.Message{Role: "user", Content: userInput},
		models.Message{Role: "narrator", Content: script.SceneText},
	)

	return &models.TurnResponse{
		NarratorName:   names[0],
		NarratorNames:  names,
		BookTitle:      script.BookTitle,
		CurrentChapter: script.CurrentChapter,
		SceneText:      script.SceneText,
		SceneLines:     lines,
		Transcript:     scene.Transcript(lines),
		Choices:        script.Choices,
		AudioBase64:    audio.Base64,
		SceneImage: models.SceneImage{
			ImageBase64: imageBase64,
			Duration:    duration,
		},
		ConversationHistory: newHistory,
		StoryState: models.StoryState{
			ContentType:    script.ContentType,
			BookTitle:      script.BookTitle,
			PlotSummary:    script.PlotSummary,
			CurrentChapter: script.CurrentChapter,
			Narrators:      names,
		},
	}, nil
}
