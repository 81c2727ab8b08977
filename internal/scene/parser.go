// Package scene splits tagged narration text into per-speaker lines.
package scene

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

const (
	tagPrefix = "[SPEAKER"
	tagSuffix = "]"

	// Hue step close to the golden angle: sequential indices land far
	// apart on the hue wheel, so small speaker counts stay distinguishable.
	hueStep = 137

	saturation = 0.70
	lightness  = 0.55

	// neutralColor marks lines with no usable speaker tag.
	neutralColor = "#9e9e9e"
)

// line is the recognizer's output: either a tagged line or a verbatim one.
type line struct {
	tagged bool
	index  int
	text   string
}

// recognize matches a leading "[SPEAKERn]" tag. The grammar is `tag? text`;
// anything that is not exactly prefix, digits, suffix keeps the whole line
// verbatim.
func recognize(raw string) line {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, tagPrefix) {
		return line{text: s}
	}
	rest := s[len(tagPrefix):]
	end := strings.Index(rest, tagSuffix)
	if end <= 0 {
		return line{text: s}
	}
	digits := rest[:end]
	idx := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return line{text: s}
		}
		idx = idx*10 + int(r-'0')
	}
	return line{tagged: true, index: idx, text: strings.TrimSpace(rest[end+len(tagSuffix):])}
}

// SpeakerColor derives the stable display color for a speaker index.
func SpeakerColor(index int) string {
	if index < 0 {
		return neutralColor
	}
	hue := float64((index * hueStep) % 360)
	return colorful.Hsl(hue, saturation, lightness).Hex()
}

// Parse splits narration text into ordered SceneLines, resolving each tag
// against the turn's narrator list. Out-of-range indices degrade to an
// unassigned line with a synthetic "Speaker N" name; untagged lines keep
// their text verbatim under the neutral color. Blank lines are dropped.
func Parse(text string, narratorNames []string) []models.SceneLine {
	var out []models.SceneLine
	for _, raw := range strings.Split(text, "\n") {
		l := recognize(raw)
		if l.text == "" {
			continue
		}
		if !l.tagged {
			out = append(out, models.SceneLine{
				Speaker: models.SpeakerUnassigned,
				Text:    l.text,
				Color:   neutralColor,
			})
			continue
		}
		if l.index >= len(narratorNames) {
			out = append(out, models.SceneLine{
				Speaker: models.SpeakerUnassigned,
				Name:    fmt.Sprintf("Speaker %d", l.index),
				Text:    l.text,
				Color:   neutralColor,
			})
			continue
		}
		out = append(out, models.SceneLine{
			Speaker: l.index,
			Name:    narratorNames[l.index],
			Text:    l.text,
			Color:   SpeakerColor(l.index),
		})
	}
	return out
}

// Transcript flattens parsed lines into a "Name: text" display form.
// Lines without a name contribute their text alone.
func Transcript(lines []models.SceneLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Name == "" {
			parts = append(parts, l.Text)
			continue
		}
		parts = append(parts, l.Name+": "+l.Text)
	}
	return strings.Join(parts, "\n")
}
