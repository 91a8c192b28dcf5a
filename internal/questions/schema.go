package questions

// CatalogSchema defines the JSON schema for era catalog documents.
var CatalogSchema = &docSchema{
	Name: "era-catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"eras": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":            map[string]any{"type": "string", "minLength": 1},
						"name":          map[string]any{"type": "string", "minLength": 1},
						"period":        map[string]any{"type": "string"},
						"description":   map[string]any{"type": "string"},
						"color":         map[string]any{"type": "string"},
						"questionCount": map[string]any{"type": "integer", "minimum": 0},
						"difficulty": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"easy":   map[string]any{"type": "integer", "minimum": 0},
								"medium": map[string]any{"type": "integer", "minimum": 0},
								"hard":   map[string]any{"type": "integer", "minimum": 0},
							},
						},
					},
					"required": []any{"id", "name"},
				},
			},
		},
		"required": []any{"eras"},
	},
}

// BankSchema defines the JSON schema for per-era question bank documents.
// Choice questions must carry choices + correctAnswer; the canonical answer
// text is required for every question either way.
var BankSchema = &docSchema{
	Name: "question-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"era": map[string]any{"type": "string", "minLength": 1},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"totalQuestions": map[string]any{"type": "integer", "minimum": 0},
					"lastUpdated":    map[string]any{"type": "string"},
				},
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"question": map[string]any{"type": "string", "minLength": 1},
						"choices": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
						"answer":        map[string]any{"type": "string", "minLength": 1},
						"explanation":   map[string]any{"type": "string"},
						"difficulty":    map[string]any{"type": "integer", "minimum": 1},
						"category":      map[string]any{"type": "string"},
						"tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":          []any{"id", "question", "answer"},
					"dependentRequired": map[string]any{"choices": []any{"correctAnswer"}},
				},
			},
		},
		"required": []any{"era", "questions"},
	},
}
