package models

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Compiled structural schemas per collection: array collections must carry
// JSON arrays, the settings and schema-map collections JSON objects.
var collectionSchemas = func() map[Collection]*gojsonschema.Schema {
	schemas := make(map[Collection]*gojsonschema.Schema, len(Collections()))

	for _, collection := range Collections() {
		loader := gojsonschema.NewStringLoader(fmt.Sprintf(`{"type": %q}`, collection.Kind()))

		schema, err := gojsonschema.NewSchema(loader)
		if err != nil {
			panic(fmt.Errorf("compile schema for %s: %w", collection, err))
		}

		schemas[collection] = schema
	}

	return schemas
}()

// ValidValue reports whether raw is a structurally valid value for the
// collection, i.e. the right JSON container kind. Well-formed scalars and
// "null" are rejected along with malformed input.
func (c Collection) ValidValue(raw json.RawMessage) bool {
	schema, ok := collectionSchemas[c]
	if !ok {
		return false
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))

	return err == nil && result.Valid()
}
