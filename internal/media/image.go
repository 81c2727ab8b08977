package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// ImageRequest describes the single illustration a turn needs.
type ImageRequest struct {
	Description string
	ContentType string // book or learning, drives the style template
	BookTitle   string
	Chapter     string
}

// ImageResult is either inline image data or a fetchable reference.
type ImageResult struct {
	Base64 string
	URL    string
}

// ImageSynthesizer renders exactly one image for a prompt.
type ImageSynthesizer interface {
	Generate(ctx context.Context, req ImageRequest) (ImageResult, error)
}

// OpenAIImages calls the images endpoint of an OpenAI-compatible backend.
type OpenAIImages struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewOpenAIImages builds an image synthesizer client.
func NewOpenAIImages(apiKey, baseURL, model string) *OpenAIImages {
	return &OpenAIImages{
		APIKey:  apiKey,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		Client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Generate requests one 1024x1024 image for the styled prompt.
func (o *OpenAIImages) Generate(ctx context.Context, imgReq ImageRequest) (ImageResult, error) {
	payload := map[string]any{
		"model":   o.Model,
		"prompt":  buildImagePrompt(imgReq),
		"n":       1,
		"size":    "1024x1024",
		"quality": "low",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ImageResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return ImageResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return ImageResult{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return ImageResult{}, fmt.Errorf("image backend returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
			URL     string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return ImageResult{}, fmt.Errorf("failed to parse image response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return ImageResult{}, fmt.Errorf("image backend returned no data")
	}
	return ImageResult{Base64: parsed.Data[0].B64JSON, URL: parsed.Data[0].URL}, nil
}

// buildImagePrompt applies the per-content-type style template.
func buildImagePrompt(req ImageRequest) string {
	learning := req.ContentType == models.ContentLearning

	kind := "cinematic"
	style := "Cinematic book illustration, detailed digital art, atmospheric lighting, wide establishing shot"
	composition := "Wide shot showing full scene"
	lighting := "Dramatic, atmospheric, mood-appropriate"
	quality := "immersive storytelling"
	subject := "Book"
	mood := "authentic to source material, immersive"
	if learning {
		kind = "educational"
		style = "Educational illustration, clear diagram, engaging visual metaphor, detailed digital art"
		composition = "Clear, informative visual showing the concept"
		lighting = "Clear, bright, easy to understand"
		quality = "educational clarity"
		subject = "Topic"
		mood = "clear, informative"
	}

	return fmt.Sprintf(`Professional %s illustration.

Scene: %s

Visual Style:
- Art: %s
- Composition: %s
- Lighting: %s
- Quality: Rich colors, %s

%s: "%s"
Section: %s
Mood: Engaging, %s.`,
		kind, req.Description, style, composition, lighting, quality,
		subject, req.BookTitle, req.Chapter, mood)
}

// FetchImageBase64 inlines a remote image reference. One extra hop on the
// critical path when the backend only returned a URL.
func FetchImageBase64(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
