package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidConfig is returned when the configuration does not have the expected shape.
var ErrInvalidConfig = errors.New("invalid configuration")

const configSchemaURL = "https://grievanceflow.dev/schemas/config.json"

// configSchemaJSON describes the shape of the configuration document.
// Per-field presence is checked in Go against Requirements, so that a missing
// translation is reported as a ConstructionError naming section, language and field.
const configSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://grievanceflow.dev/schemas/config.json",
  "type": "object",
  "required": ["flow", "languages", "departments", "sections"],
  "additionalProperties": false,
  "properties": {
    "flow": {
      "type": "object",
      "required": ["name", "version"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string" },
        "description": { "type": "string" },
        "company_id": { "type": "string" },
        "version": { "type": "integer", "minimum": 1 },
        "active": { "type": "boolean" },
        "trigger": { "type": "string" },
        "trigger_type": { "enum": ["keyword", "button_click", "menu_selection"] },
        "welcome": { "type": "string" },
        "end_message": { "type": "string" }
      }
    },
    "languages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "name", "offset"],
        "additionalProperties": false,
        "properties": {
          "code": { "type": "string" },
          "name": { "type": "string" },
          "offset": { "type": "integer" }
        }
      }
    },
    "departments": {
      "type": "object",
      "required": ["title", "rows"],
      "additionalProperties": false,
      "properties": {
        "title": { "type": "string" },
        "rows": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["id", "title"],
            "additionalProperties": false,
            "properties": {
              "id": { "type": "string", "minLength": 1 },
              "title": { "type": "string" },
              "description": { "type": "string" }
            }
          }
        }
      }
    },
    "sections": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "additionalProperties": { "type": "string" }
        }
      }
    }
  }
}`

var compileConfigSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(configSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal config schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(configSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add config schema resource: %w", err)
	}
	return c.Compile(configSchemaURL)
})

// validateShape checks a decoded configuration tree against the embedded schema.
func validateShape(raw map[string]any) error {
	sch, err := compileConfigSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so numbers become json.Number, as the validator expects.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := sch.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w:\n- %s", ErrInvalidConfig, strings.Join(collectViolations(verr), "\n- "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// collectViolations flattens a ValidationError tree into "/path: message" lines.
func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/" + strings.Join(verr.InstanceLocation, "/")
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, collectViolations(cause)...)
	}
	return out
}
