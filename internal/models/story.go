package models

// Content types a story can carry
const (
	ContentBook     = "book"
	ContentLearning = "learning"
)

// HistoryWindow is how many recent messages are reinjected into prompts.
// Older history stays in the client's record but is never sent back.
const HistoryWindow = 4

// Message is one entry of the caller-held conversation history
type Message struct {
	Role    string `json:"role"` // "user" or "narrator"
	Content string `json:"content"`
}

// StoryState is the opaque continuation record round-tripped through the
// caller. An empty BookTitle marks the absence of an established story.
// Narrator order is stable across turns; index 0 is the primary voice.
type StoryState struct {
	ContentType    string   `json:"content_type"`
	BookTitle      string   `json:"book_title"`
	PlotSummary    string   `json:"plot_summary"`
	CurrentChapter string   `json:"current_chapter"`
	Narrators      []string `json:"narrators"`
}
