package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes an effective configuration after defaults are applied.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["host", "model"],
  "properties": {
    "host": {"type": "string", "pattern": "^https?://[^\\s/]+(:[0-9]+)?(/\\S*)?$"},
    "model": {"type": "string", "minLength": 1},
    "debug": {"type": "boolean"},
    "logFile": {"type": "string"},
    "parameterTemplate": {"type": "string"},
    "parameters": {
      "type": "object",
      "properties": {
        "temperature": {"type": "number", "minimum": 0},
        "top_k": {"type": "integer", "minimum": 0},
        "top_p": {"type": "number", "minimum": 0, "maximum": 1},
        "min_p": {"type": "number", "minimum": 0, "maximum": 1},
        "repeat_last_n": {"type": "integer", "minimum": -1},
        "repeat_penalty": {"type": "number", "minimum": 0},
        "presence_penalty": {"type": "number"},
        "frequency_penalty": {"type": "number"},
        "seed": {"type": "integer"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// Validate checks cfg against the configuration schema and reports every violation at once.
func Validate(cfg Config) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return fmt.Errorf("config schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(details, "; "))
}
