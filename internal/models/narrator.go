package models

// NarratorProfile describes one persona in the fixed registry
type NarratorProfile struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Personality   string   `json:"personality"`
	Expertise     []string `json:"expertise"`
	RefAudio      string   `json:"ref_audio"`
	RefTranscript string   `json:"ref_transcript"`
}

// ReferenceBundle pairs a narrator's decoded voice sample with its transcript.
// Index matches the narrator's position in the turn's speaker list.
type ReferenceBundle struct {
	Index       int    `json:"index"`
	Narrator    string `json:"narrator"`
	AudioBase64 string `json:"audio_base64"`
	AudioFormat string `json:"audio_format"`
	Transcript  string `json:"transcript"`
}
