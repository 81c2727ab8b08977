package story

import (
	"testing"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

func TestIsFirstTurn(t *testing.T) {
	tests := []struct {
		name  string
		state *models.StoryState
		want  bool
	}{
		{"nil state", nil, true},
		{"empty state", &models.StoryState{}, true},
		{"blank title", &models.StoryState{BookTitle: "   "}, true},
		{"title only", &models.StoryState{BookTitle: "Dune"}, false},
		{
			"full continuation state",
			&models.StoryState{
				ContentType: models.ContentLearning,
				BookTitle:   "Learning: Black Holes",
				Narrators:   []string{"Stephen Hawking"},
			},
			false,
		},
		{
			"title present, everything else missing",
			&models.StoryState{BookTitle: "The Great Gatsby"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFirstTurn(tt.state); got != tt.want {
				t.Errorf("IsFirstTurn() = %v, want %v", got, tt.want)
			}
		})
	}
}
