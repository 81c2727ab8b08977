package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

func TestHiggsVoiceMessageComposition(t *testing.T) {
	var captured struct {
		Model      string            `json:"model"`
		Messages   []json.RawMessage `json:"messages"`
		Modalities []string          `json:"modalities"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		err := json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"audio": map[string]any{"data": "generated-audio"}}},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	synth := NewHiggsVoice("key", srv.URL, "higgs-test")
	bundles := []models.ReferenceBundle{
		{Index: 0, Narrator: "Albert Einstein", AudioBase64: "QQ==", AudioFormat: "mp3", Transcript: "ref zero"},
		{Index: 1, Narrator: "Cher", AudioBase64: "Qg==", AudioFormat: "mp3", Transcript: "ref one"},
	}
	sceneText := "[SPEAKER0] Let's explore.\n[SPEAKER1] Oh, I love this topic."

	audio, err := synth.Synthesize(context.Background(), VoiceRequest{Bundles: bundles, SceneText: sceneText})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if audio != "generated-audio" {
		t.Errorf("audio = %q", audio)
	}

	// system + (text, audio) per bundle + final narration turn
	wantLen := 1 + 2*len(bundles) + 1
	if len(captured.Messages) != wantLen {
		t.Fatalf("got %d messages, want %d", len(captured.Messages), wantLen)
	}

	role := func(i int) string {
		var m struct {
			Role string `json:"role"`
		}
		if err := json.Unmarshal(captured.Messages[i], &m); err != nil {
			t.Fatal(err)
		}
		return m.Role
	}
	wantRoles := []string{"system", "user", "assistant", "user", "assistant", "user"}
	for i, want := range wantRoles {
		if got := role(i); got != want {
			t.Errorf("message %d role = %q, want %q", i, got, want)
		}
	}

	// Reference text turns carry their speaker tag.
	var textTurn struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(captured.Messages[1], &textTurn); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(textTurn.Content, "[SPEAKER0] ") {
		t.Errorf("first reference turn untagged: %q", textTurn.Content)
	}

	// The final turn is the narration itself.
	var final struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(captured.Messages[wantLen-1], &final); err != nil {
		t.Fatal(err)
	}
	if final.Content != sceneText {
		t.Errorf("final turn = %q, want narration text", final.Content)
	}

	if len(captured.Modalities) != 2 {
		t.Errorf("modalities = %v", captured.Modalities)
	}
}

func TestHiggsVoiceNoAudioInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "text only"}},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	_, err := NewHiggsVoice("key", srv.URL, "m").Synthesize(context.Background(), VoiceRequest{SceneText: "[SPEAKER0] hi"})
	if err == nil {
		t.Fatal("expected error when backend returns no audio")
	}
}

func TestHiggsVoiceBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHiggsVoice("key", srv.URL, "m").Synthesize(context.Background(), VoiceRequest{SceneText: "[SPEAKER0] hi"})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("expected 503 error, got %v", err)
	}
}
