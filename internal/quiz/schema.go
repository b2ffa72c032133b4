package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// submissionSchema is the JSON Schema a submission document must
// satisfy before it is handed to the grader.
var submissionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quiz_id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"answers": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "string",
			},
		},
		"time_taken": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
	},
	"required":             []any{"answers"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ParseSubmission validates raw JSON against the submission schema and
// decodes it. Garbage answers inside the map are fine (they grade as
// incorrect); garbage document shapes are not.
func ParseSubmission(raw []byte) (Submission, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileSubmissionSchema()
	})
	if compileErr != nil {
		return Submission{}, fmt.Errorf("compile submission schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Submission{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return Submission{}, fmt.Errorf("submission does not match schema: %w", err)
	}

	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	if sub.Answers == nil {
		sub.Answers = map[string]string{}
	}
	return sub, nil
}

func compileSubmissionSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(submissionSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://quiz-submission.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
