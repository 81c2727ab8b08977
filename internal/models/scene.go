package models

// SpeakerUnassigned marks a line that carried no usable speaker tag
const SpeakerUnassigned = -1

// SceneLine is one parsed unit of narration
type SceneLine struct {
	Speaker int    `json:"speaker"` // zero-based index, or SpeakerUnassigned
	Name    string `json:"name"`
	Text    string `json:"text"`
	Color   string `json:"color"` // hex, stable per speaker index
}

// SceneImage carries the inlined illustration and its display duration
type SceneImage struct {
	ImageBase64 string  `json:"image_base64"`
	Duration    float64 `json:"duration"`
}
