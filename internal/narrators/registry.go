// Package narrators holds the fixed persona catalog and name resolution.
package narrators

import "github.com/oleksii-nakhod/iconicall/internal/models"

// DefaultKey is the persona every unresolvable name falls back to.
const DefaultKey = "david_attenborough"

// registry is constructed once at init and never mutated afterwards, so it
// is safe for unsynchronized concurrent reads across turns.
var registry = map[string]models.NarratorProfile{
	"albert_einstein": {
		Name:          "Albert Einstein",
		Description:   "Theoretical physicist known for the theory of relativity.",
		Personality:   `Playful genius who uses thought experiments and loves making complex ideas click with "aha!" moments`,
		Expertise:     []string{"Physics", "Mathematics", "Philosophy", "Science"},
		RefAudio:      "einstein.mp3",
		RefTranscript: "einstein.txt",
	},
	"dipper_pines": {
		Name:          "Dipper Pines",
		Description:   "Curious and adventurous character from Gravity Falls.",
		Personality:   "Enthusiastic nerd energy, references mysteries and makes everything an adventure",
		Expertise:     []string{"Mystery", "Adventure", "Puzzles", "Cryptography"},
		RefAudio:      "dipper.mp3",
		RefTranscript: "dipper.txt",
	},
	"david_attenborough": {
		Name:          "David Attenborough",
		Description:   "Renowned natural historian and broadcaster famous for his nature documentaries.",
		Personality:   "Calm, wise, and deeply reverent toward nature; narrates with wonder, empathy, and quiet enthusiasm for the natural world",
		Expertise:     []string{"Nature", "Biology", "Ecology", "Animals", "Environment"},
		RefAudio:      "attenborough.mp3",
		RefTranscript: "attenborough.txt",
	},
	"stephen_hawking": {
		Name:          "Stephen Hawking",
		Description:   "Theoretical physicist known for his work on black holes and cosmology.",
		Personality:   "Dry humor and cosmic curiosity, explains the mysteries of the universe with clarity, patience, and a touch of wit",
		Expertise:     []string{"Cosmology", "Black Holes", "Space", "Quantum Physics", "Universe"},
		RefAudio:      "hawking.mp3",
		RefTranscript: "hawking.txt",
	},
	"kung_fu_panda": {
		Name:          "Po",
		Description:   "Po, the enthusiastic and food-loving panda who becomes the Dragon Warrior. Martial arts expert",
		Personality:   "Goofy but determined, blends humor, humility, and bursts of kung fu wisdom; always believes anyone can be a hero",
		Expertise:     []string{"Martial Arts", "Self-belief", "Perseverance", "Eastern Philosophy"},
		RefAudio:      "kungfupanda.mp3",
		RefTranscript: "kungfupanda.txt",
	},
	"martin_luther": {
		Name:          "Martin Luther",
		Description:   "German theologian who initiated the Protestant Reformation. Activist.",
		Personality:   "Passionate reformer with conviction and moral fire, speaks boldly about truth, faith, and challenging authority",
		Expertise:     []string{"Theology", "History", "Social Justice", "Reform", "Ethics"},
		RefAudio:      "martinluther.mp3",
		RefTranscript: "martinluther.txt",
	},
	"j_robert_oppenheimer": {
		Name:          "Oppenheimer",
		Description:   `Theoretical physicist often called the "father of the atomic bomb."`,
		Personality:   "Intense and introspective visionary, balances scientific brilliance with moral reflection and haunting eloquence",
		Expertise:     []string{"Nuclear Physics", "Ethics", "History", "Science", "Philosophy"},
		RefAudio:      "oppenheimer.mp3",
		RefTranscript: "oppenheimer.txt",
	},
	"spongebob_squarepants": {
		Name:          "SpongeBob SquarePants",
		Description:   "Optimistic and energetic sea sponge who lives in a pineapple under the sea.",
		Personality:   "Boundless enthusiasm and childlike wonder; turns every task into a fun adventure with positivity and laughter",
		Expertise:     []string{"Fun Learning", "Creativity", "Friendship", "Ocean Life", "Comedy"},
		RefAudio:      "spongebob.mp3",
		RefTranscript: "spongebob.txt",
	},
	"cher": {
		Name:          "Cher",
		Description:   "Legendary American singer, actress, and cultural icon celebrated for her powerful contralto voice, fearless style, and lasting influence on pop music and fashion.",
		Personality:   "Mature, confident, and self-assured; speaks with poise and a touch of dry humor, carrying the presence of someone who's seen it all and owns every moment.",
		Expertise:     []string{"Music", "Fashion", "Pop Culture", "Entertainment", "Style"},
		RefAudio:      "cher.mp3",
		RefTranscript: "cher.txt",
	},
}

// All returns every registered profile. Order is unspecified.
func All() []models.NarratorProfile {
	out := make([]models.NarratorProfile, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	return out
}

// Default returns the fallback persona.
func Default() models.NarratorProfile {
	return registry[DefaultKey]
}
