package scene

import (
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

func TestParseSingleSpeaker(t *testing.T) {
	lines := Parse("[SPEAKER0] Black holes are regions where gravity wins.", []string{"Stephen Hawking"})
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Speaker != 0 {
		t.Errorf("speaker = %d, want 0", l.Speaker)
	}
	if l.Name != "Stephen Hawking" {
		t.Errorf("name = %q", l.Name)
	}
	if l.Text != "Black holes are regions where gravity wins." {
		t.Errorf("tag not stripped: %q", l.Text)
	}
}

func TestParseMultiSpeaker(t *testing.T) {
	narrators := []string{"Albert Einstein", "Cher"}
	text := "[SPEAKER0] Let's explore.\n[SPEAKER1] Oh, I love this topic."

	lines := Parse(text, narrators)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Speaker != 0 || lines[0].Name != "Albert Einstein" {
		t.Errorf("line 0: speaker=%d name=%q", lines[0].Speaker, lines[0].Name)
	}
	if lines[1].Speaker != 1 || lines[1].Name != "Cher" {
		t.Errorf("line 1: speaker=%d name=%q", lines[1].Speaker, lines[1].Name)
	}
	if lines[0].Color == lines[1].Color {
		t.Errorf("speakers 0 and 1 share color %s", lines[0].Color)
	}
}

func TestParseUntaggedLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "The story continues quietly."},
		{"broken tag", "[SPEAKER] missing digits"},
		{"non-numeric tag", "[SPEAKERx] not a number"},
		{"unclosed tag", "[SPEAKER0 no closing bracket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Parse(tt.input, []string{"Cher"})
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			l := lines[0]
			if l.Speaker != models.SpeakerUnassigned {
				t.Errorf("speaker = %d, want unassigned", l.Speaker)
			}
			if l.Text != tt.input {
				t.Errorf("untagged line not kept verbatim: %q", l.Text)
			}
			if l.Color != neutralColor {
				t.Errorf("color = %s, want neutral", l.Color)
			}
		})
	}
}

func TestParseOutOfRangeIndex(t *testing.T) {
	lines := Parse("[SPEAKER2] Who am I?", []string{"Cher", "Po"})
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Speaker != models.SpeakerUnassigned {
		t.Errorf("speaker = %d, want unassigned", l.Speaker)
	}
	if l.Name != "Speaker 2" {
		t.Errorf("name = %q, want synthetic Speaker 2", l.Name)
	}
	if l.Color != neutralColor {
		t.Errorf("color = %s, want neutral", l.Color)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	lines := Parse("[SPEAKER0] First.\n\n   \n[SPEAKER0] Second.", []string{"Po"})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

// Indices must resolve within [0, len(narrators)) in encounter order.
func TestParseIndexContiguity(t *testing.T) {
	narrators := []string{"Albert Einstein", "Cher", "Po"}
	text := "[SPEAKER0] a\n[SPEAKER1] b\n[SPEAKER2] c\n[SPEAKER1] d"

	lines := Parse(text, narrators)
	wantOrder := []int{0, 1, 2, 1}
	if len(lines) != len(wantOrder) {
		t.Fatalf("got %d lines, want %d", len(lines), len(wantOrder))
	}
	for i, l := range lines {
		if l.Speaker != wantOrder[i] {
			t.Errorf("line %d speaker = %d, want %d", i, l.Speaker, wantOrder[i])
		}
		if l.Speaker < 0 || l.Speaker >= len(narrators) {
			t.Errorf("line %d speaker %d outside narrator list", i, l.Speaker)
		}
		if l.Name != narrators[l.Speaker] {
			t.Errorf("line %d name %q does not match index %d", i, l.Name, l.Speaker)
		}
	}
}

func TestSpeakerColorDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		if SpeakerColor(i) != SpeakerColor(i) {
			t.Errorf("color for index %d not stable", i)
		}
	}
}

func TestSpeakerColorHueSeparation(t *testing.T) {
	hue := func(index int) float64 {
		c, err := colorful.Hex(SpeakerColor(index))
		if err != nil {
			t.Fatalf("invalid hex for index %d: %v", index, err)
		}
		h, _, _ := c.Hsl()
		return h
	}

	h0, h1 := hue(0), hue(1)
	diff := h1 - h0
	if diff < 0 {
		diff = -diff
	}
	if diff > 180 {
		diff = 360 - diff
	}
	if diff < 90 {
		t.Errorf("hues for indices 0 and 1 only %f degrees apart", diff)
	}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		c := SpeakerColor(i)
		if seen[c] {
			t.Errorf("duplicate color %s among indices 0-2", c)
		}
		seen[c] = true
	}
}

func TestTranscript(t *testing.T) {
	lines := []models.SceneLine{
		{Speaker: 0, Name: "Albert Einstein", Text: "Let's explore."},
		{Speaker: models.SpeakerUnassigned, Text: "A distant rumble."},
		{Speaker: 1, Name: "Cher", Text: "I love this topic."},
	}

	got := Transcript(lines)
	want := strings.Join([]string{
		"Albert Einstein: Let's explore.",
		"A distant rumble.",
		"Cher: I love this topic.",
	}, "\n")
	if got != want {
		t.Errorf("transcript mismatch:\n got: %q\nwant: %q", got, want)
	}
}
