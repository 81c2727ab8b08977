package models

// TurnRequest is the main input payload. Either AudioBase64 or TextInput
// must be present; history and story state are echoed from the prior turn.
type TurnRequest struct {
	AudioBase64         string      `json:"audio_base64,omitempty"`
	AudioFormat         string      `json:"audio_format,omitempty"`
	TextInput           string      `json:"text_input,omitempty"`
	ConversationHistory []Message   `json:"conversation_history,omitempty"`
	StoryState          *StoryState `json:"story_state,omitempty"`
}
