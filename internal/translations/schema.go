package translations

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Resource files must be objects whose values are strings or nested objects
// of the same shape.
const resourceSchema = `{
	"type": "object",
	"additionalProperties": { "$ref": "#/$defs/value" },
	"$defs": {
		"value": {
			"oneOf": [
				{ "type": "string" },
				{
					"type": "object",
					"additionalProperties": { "$ref": "#/$defs/value" }
				}
			]
		}
	}
}`

var compiledResourceSchema = jsonschema.MustCompileString("resource.json", resourceSchema)

// decodeResource parses a resource payload and validates its shape. Numbers
// are decoded as json.Number so validation sees the exact literal.
func decodeResource(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("translations: decode resource: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("translations: decode resource: trailing data after document")
	}

	if err := compiledResourceSchema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("translations: resource shape: %w", err)
	}

	raw, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("translations: resource shape: expected object")
	}
	return raw, nil
}
