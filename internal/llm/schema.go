package llm

// Output schemas declared to the generation backend. The tag-format
// constraint lives in the prompt; the schema pins the field shape.

func sceneImageSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"duration":    map[string]any{"type": "number"},
		},
		"additionalProperties": false,
		"required":             []string{"description", "duration"},
	}
}

func firstTurnSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content_type": map[string]any{"type": "string", "enum": []string{"book", "learning"}},
			"narrator_names": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 3,
			},
			"book_title":      map[string]any{"type": "string"},
			"plot_summary":    map[string]any{"type": "string"},
			"current_chapter": map[string]any{"type": "string"},
			"scene_text":      map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"scene_image": sceneImageSchema(),
		},
		"additionalProperties": false,
		"required": []string{
			"content_type", "narrator_names", "book_title", "plot_summary",
			"current_chapter", "scene_text", "choices", "scene_image",
		},
	}
}

func continuationSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"current_chapter": map[string]any{"type": "string"},
			"scene_text":      map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"scene_image": sceneImageSchema(),
		},
		"additionalProperties": false,
		"required":             []string{"current_chapter", "scene_text", "choices", "scene_image"},
	}
}
