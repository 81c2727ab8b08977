package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// VoiceRequest is one multi-speaker synthesis request: the reference
// bundles in speaker order and the tagged narration text to render.
type VoiceRequest struct {
	Bundles   []models.ReferenceBundle
	SceneText string
}

// VoiceSynthesizer renders cloned-voice audio for tagged narration.
type VoiceSynthesizer interface {
	Synthesize(ctx context.Context, req VoiceRequest) (string, error)
}

// HiggsVoice calls a chat-completions style voice-cloning backend. Each
// reference bundle becomes a text turn plus an audio turn so the backend
// can bind "[SPEAKERn]" tags to the supplied voices.
type HiggsVoice struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewHiggsVoice builds a voice synthesizer client.
func NewHiggsVoice(apiKey, baseURL, model string) *HiggsVoice {
	return &HiggsVoice{
		APIKey:  apiKey,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		Client:  &http.Client{Timeout: 180 * time.Second},
	}
}

const voiceSystemPrompt = "You are a multi-voice narration engine. Each reference voice below is " +
	"introduced by a [SPEAKERn] transcript followed by an audio sample of that voice. " +
	"Render the final message so every line tagged [SPEAKERn] is spoken in voice n. " +
	"Preserve line order and do not add speech for untagged text beyond reading it in voice 0."

// Synthesize sends the composition request and returns base64 audio.
func (h *HiggsVoice) Synthesize(ctx context.Context, voiceReq VoiceRequest) (string, error) {
	messages := []map[string]any{
		{"role": "system", "content": voiceSystemPrompt},
	}
	for _, b := range voiceReq.Bundles {
		messages = append(messages,
			map[string]any{
				"role":    "user",
				"content": fmt.Sprintf("[SPEAKER%d] %s", b.Index, b.Transcript),
			},
			map[string]any{
				"role": "assistant",
				"content": []map[string]any{
					{
						"type": "input_audio",
						"input_audio": map[string]any{
							"data":   b.AudioBase64,
							"format": b.AudioFormat,
						},
					},
				},
			},
		)
	}
	messages = append(messages, map[string]any{"role": "user", "content": voiceReq.SceneText})

	payload := map[string]any{
		"model":                 h.Model,
		"messages":              messages,
		"modalities":            []string{"text", "audio"},
		"max_completion_tokens": 4096,
		"temperature":           1.0,
		"top_p":                 0.95,
		"top_k":                 50,
		"stop":                  []string{"<|eot_id|>", "<|end_of_text|>", "<|audio_eos|>"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("voice backend returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Audio struct {
					Data string `json:"data"`
				} `json:"audio"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse voice response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Audio.Data == "" {
		return "", fmt.Errorf("voice backend returned no audio")
	}
	return parsed.Choices[0].Message.Audio.Data, nil
}
