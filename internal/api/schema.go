package api

// Schema names a JSON schema for a response payload.
type Schema struct {
	Name       string
	Definition map[string]any
}

// questionDef is the per-question shape shared by both catalog modes.
var questionDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "integer"},
		"question": map[string]any{"type": "string"},
		"option_a": map[string]any{"type": "string"},
		"option_b": map[string]any{"type": "string"},
		"option_c": map[string]any{"type": "string"},
		"option_d": map[string]any{"type": "string"},
		"correct_option": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 3,
		},
		"explanation": map[string]any{"type": "string"},
	},
	"required": []any{"id", "question", "correct_option"},
}

// CatalogSchema validates both the chapter-nested and the flat catalog
// payload. The server omits whichever of chapters/questions does not
// apply to the requested mode.
var CatalogSchema = &Schema{
	Name: "course-catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":            map[string]any{"type": "string"},
			"total_questions": map[string]any{"type": "integer"},
			"questions": map[string]any{
				"type":  "array",
				"items": questionDef,
			},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer"},
						"name": map[string]any{"type": "string"},
						"subtopics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":   map[string]any{"type": "integer"},
									"name": map[string]any{"type": "string"},
									"questions": map[string]any{
										"type":  "array",
										"items": questionDef,
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

// progressEntryDef is the per-question progress record. selected_option
// is null for flag-only interactions.
var progressEntryDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "integer"},
		"selected_option": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
			"maximum": 3,
		},
		"is_flagged": map[string]any{"type": "boolean"},
	},
	"required": []any{"question"},
}

// AnalyticsSchema validates the latest-submitted-analytics payload in
// either the flat or chapter-nested shape. Aggregate fields are all
// optional: the API has been observed to omit them inconsistently, and
// the aggregate counter coerces what is missing.
var AnalyticsSchema = &Schema{
	Name: "attempt-analytics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detail":               map[string]any{"type": "string"},
			"correct_count":        map[string]any{"type": []any{"integer", "null"}},
			"attempted_questions":  map[string]any{"type": []any{"integer", "null"}},
			"flagged_count":        map[string]any{"type": []any{"integer", "null"}},
			"skipped_count":        map[string]any{"type": []any{"integer", "null"}},
			"total_questions":      map[string]any{"type": []any{"integer", "null"}},
			"is_submitted":         map[string]any{"type": "boolean"},
			"last_viewed_question": map[string]any{"type": "integer"},
			"questions": map[string]any{
				"type":  "array",
				"items": progressEntryDef,
			},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "integer"},
						"subtopics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id": map[string]any{"type": "integer"},
									"questions": map[string]any{
										"type":  "array",
										"items": progressEntryDef,
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

// CourseIndexSchema validates the course listing.
var CourseIndexSchema = &Schema{
	Name: "course-index",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":              map[string]any{"type": "integer"},
				"name":            map[string]any{"type": "string"},
				"description":     map[string]any{"type": "string"},
				"total_questions": map[string]any{"type": "integer"},
				"duration_mins":   map[string]any{"type": "integer"},
			},
			"required": []any{"id", "name"},
		},
	},
}
