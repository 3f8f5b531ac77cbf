package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Content files are validated before decoding so a half-edited bank degrades
// to empty instead of loading a partially broken collection.

var topicsSchema = mustCompile("topics", map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"subject":          map[string]any{"type": "string"},
			"title":            map[string]any{"type": "string"},
			"whatIsIt":         map[string]any{"type": "string"},
			"howItWorks":       map[string]any{"type": "string"},
			"realWorldExample": map[string]any{"type": "string"},
			"keyTerms": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":       map[string]any{"type": "string"},
						"definition": map[string]any{"type": "string"},
					},
					"required": []any{"term", "definition"},
				},
			},
			"nsbTraps":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"didYouKnow":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"relatedTopics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"id", "subject", "title"},
	},
})

var questionsSchema = mustCompile("questions", map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      map[string]any{"type": "string", "minLength": 1},
			"subject": map[string]any{"type": "string"},
			"subtopic": map[string]any{
				"type": "string",
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"multipleChoice", "tossUp", "freeResponse"},
			},
			"questionText": map[string]any{"type": "string"},
			"answerChoices": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
			"correctAnswer": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"grade6", "grade7"},
			},
			"topicId": map[string]any{"type": "string"},
		},
		"required": []any{"id", "subject", "type", "questionText", "correctAnswer", "difficulty"},
	},
})

// mustCompile compiles a schema definition at package init. The definitions
// are static, so a compile failure is a programming error.
func mustCompile(name string, definition map[string]any) *jsonschema.Schema {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		panic(fmt.Sprintf("marshal %s schema: %v", name, err))
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		panic(fmt.Sprintf("add %s schema resource: %v", name, err))
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}
