package knowledge

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://adivina/node.json"

// nodeSchema is the JSON schema of the persisted tree. Interior, Leaf and
// Empty are mutually exclusive shapes; extra keys are rejected.
var nodeSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$ref":    "#/$defs/node",
	"$defs": map[string]any{
		"node": map[string]any{
			"oneOf": []any{
				map[string]any{
					"type":                 "object",
					"required":             []any{"question", "yes", "no"},
					"additionalProperties": false,
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"yes":      map[string]any{"$ref": "#/$defs/node"},
						"no":       map[string]any{"$ref": "#/$defs/node"},
					},
				},
				map[string]any{
					"type":                 "object",
					"required":             []any{"name"},
					"additionalProperties": false,
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
					},
				},
				map[string]any{
					"type":          "object",
					"maxProperties": 0,
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles nodeSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go literals.
		b, err := json.Marshal(nodeSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON value against the node schema.
func validateDocument(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	return s.Validate(doc)
}
