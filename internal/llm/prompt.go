package llm

import (
	"fmt"
	"strings"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

func buildFirstTurnPrompt(userInput string, roster []models.NarratorProfile) string {
	var catalog []string
	for _, n := range roster {
		catalog = append(catalog, fmt.Sprintf("- %q: %s (Expertise: %s)", n.Name, n.Description, strings.Join(n.Expertise, ", ")))
	}

	return fmt.Sprintf(`You are an AI that creates interactive experiences - either bringing books to life OR teaching topics through engaging narration.

User said: "%s"

Available Narrators (USE EXACT NAMES):
%s

TASK: Determine if this is a BOOK REQUEST or a LEARNING TOPIC REQUEST.

IF BOOK (e.g., "Harry Potter", "The Great Gatsby"):
- Extract the book title
- Choose 1-3 narrators that fit the book's genre and cast
- Start at the CANONICAL BEGINNING of the story
- Create opening scene with 2-3 choices aligned with plot points

IF LEARNING TOPIC (e.g., "quantum physics", "how black holes work", "photosynthesis"):
- Identify the topic
- Choose 1-3 expert narrators most qualified for this subject
- Create an engaging introduction to the topic
- Provide 2-3 choices for learning directions (deeper dive, related topic, practical example)

NARRATION FORMAT:
- scene_text is a sequence of short lines, one per line break
- Every line MUST start with a speaker tag [SPEAKERn] where n is the zero-based
  position of the speaking narrator in your narrator_names list
- Tags must be contiguous from 0; [SPEAKER0] is always the primary narrator
- Example with two narrators:
[SPEAKER0] Let's explore what happens at the edge of a black hole.
[SPEAKER1] Oh, I love this part. Nothing escapes, not even light!

CRITICAL: every entry of narrator_names MUST be copied EXACTLY from the list above. For example:
- "Stephen Hawking" (correct)
- "stephen hawking" (WRONG - incorrect capitalization)
- "Albert Einstein" (correct)
- "Einstein" (WRONG - incomplete name)

IMPORTANT:
- For books: Stay true to source material
- For learning: Make it engaging, use analogies, relate to real life
- Match narrator personalities to content
- Keep explanations clear and fun

Image requirements:
- Books: Cinematic illustration of the scene
- Learning: Visual representation of the concept (diagrams, illustrations, metaphors)
- Keep the description under 150 characters`, userInput, strings.Join(catalog, "\n"))
}

func buildContinuationPrompt(userInput string, state models.StoryState, history []models.Message) string {
	recent := recentHistory(history)
	narrators := strings.Join(state.Narrators, ", ")

	if state.ContentType == models.ContentLearning {
		return fmt.Sprintf(`You are continuing an interactive LEARNING experience about "%s".

Key Concepts: %s
Current Section: %s
Experts (in speaker order): %s

Recent Conversation:
%s

User's Choice: "%s"

Continue the learning experience:
1. Acknowledge their choice
2. Explain the concept clearly using analogies and examples
3. Build on previous knowledge
4. Provide 2-3 new choices (deeper dive, new angle, related topic)
5. Keep it engaging and interactive

NARRATION FORMAT:
- scene_text is short lines, each starting with [SPEAKERn]
- n is the zero-based position in the expert list above; keep that order

Image: Educational illustration showing the concept clearly`,
			state.BookTitle, orDefault(state.PlotSummary, "Educational content"),
			orDefault(state.CurrentChapter, "Introduction"), narrators, recent, userInput)
	}

	return fmt.Sprintf(`You are continuing an interactive STORY from "%s".

Plot Summary: %s
Current Chapter: %s
Narrators (in speaker order): %s

Recent Story:
%s

User's Choice: "%s"

Continue the story while maintaining plot fidelity:
1. Acknowledge their choice and show the consequence
2. Progress toward the next major plot point from the actual book
3. Keep characters and events consistent with the source material
4. Present 2-3 new choices that lead to canonical story moments
5. Update the chapter/progress tracker

NARRATION FORMAT:
- scene_text is short lines, each starting with [SPEAKERn]
- n is the zero-based position in the narrator list above; keep that order

Image: Wide cinematic shot of this scene`,
		state.BookTitle, orDefault(state.PlotSummary, "Follow the canonical story"),
		orDefault(state.CurrentChapter, "Early story"), narrators, recent, userInput)
}

// recentHistory renders the last few messages; older history is the
// client's record and never reinjected, bounding prompt size.
func recentHistory(history []models.Message) string {
	if len(history) > models.HistoryWindow {
		history = history[len(history)-models.HistoryWindow:]
	}
	var lines []string
	for _, m := range history {
		who := "Narrator"
		if m.Role == "user" {
			who = "User"
		}
		lines = append(lines, who+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
