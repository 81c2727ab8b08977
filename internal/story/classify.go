package story

import (
	"strings"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// IsFirstTurn reports whether the caller-supplied state establishes a story.
// Absent state or a blank title means nothing has been established yet.
// Recomputed every request; the server holds no state of its own.
func IsFirstTurn(state *models.StoryState) bool {
	return state == nil || strings.TrimSpace(state.BookTitle) == ""
}
