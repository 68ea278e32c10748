package tutor

import "github.com/mathpech/mathpech/internal/llm"

// ScanSchema constrains the problem scanner output to a starting hint
// and the key formulas, never the final answer.
var ScanSchema = &llm.Schema{
	Name:        "problem-scan",
	Description: "A starting hint and the key formulas for a scanned math exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "Un indice pour commencer, sans donner la réponse finale",
			},
			"formulas": map[string]any{
				"type":        "array",
				"description": "Les formules clés nécessaires, en LaTeX",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{"hint", "formulas"},
	},
}
