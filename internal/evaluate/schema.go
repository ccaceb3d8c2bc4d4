package evaluate

// ResultSchema returns the JSON Schema describing an EvaluationResult as it is
// serialised by the API and the CLI.
func ResultSchema() map[string]any {
	levels := Levels()
	enum := make([]any, 0, len(levels))
	for _, l := range levels {
		enum = append(enum, string(l.Level))
	}
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"required": []any{
			"risk_level",
			"confidence",
			"risk_score",
			"identified_risks",
			"missing_safeguards",
			"mitigation_considerations",
			"risk_level_explanation",
		},
		"properties": map[string]any{
			"risk_level": map[string]any{
				"type": "string",
				"enum": enum,
			},
			"confidence": map[string]any{
				"type":             "number",
				"exclusiveMinimum": 0,
				"maximum":          1,
			},
			"risk_score": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"identified_risks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"step", "risk"},
					"properties": map[string]any{
						"step": map[string]any{"type": "string"},
						"risk": map[string]any{"type": "string"},
					},
					"additionalProperties": false,
				},
			},
			"missing_safeguards": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"mitigation_considerations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"risk_level_explanation": map[string]any{
				"type": "string",
			},
		},
		"additionalProperties": false,
	}
}
