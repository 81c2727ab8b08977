package models

// TurnResponse is the assembled scene returned to the caller
type TurnResponse struct {
	NarratorName        string      `json:"narrator_name"` // primary voice (index 0)
	NarratorNames       []string    `json:"narrator_names"`
	BookTitle           string      `json:"book_title"`
	CurrentChapter      string      `json:"current_chapter"`
	SceneText           string      `json:"scene_text"`
	SceneLines          []SceneLine `json:"scene_lines"`
	Transcript          string      `json:"transcript"` // flattened "Name: text" form
	Choices             []string    `json:"choices"`
	AudioBase64         string      `json:"audio_base64"`
	SceneImage          SceneImage  `json:"scene_image"`
	ConversationHistory []Message   `json:"conversation_history"`
	StoryState          StoryState  `json:"story_state"`
	Performance         Performance `json:"performance"`
}

// Performance is the per-step timing breakdown for one turn
type Performance struct {
	TotalMs   float64            `json:"total_ms"`
	Breakdown map[string]float64 `json:"breakdown"`
}
