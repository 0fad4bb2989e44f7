package fluentser

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SerializeJSON decodes a JSON document and presents it to a Serializer:
// objects arrive as maps, arrays as sequences, and scalars as their Value
// counterparts. Object keys are visited in sorted order. This makes a raw
// JSON payload a self-describing value, so a JSON object can be merged
// straight into an ArgsSerializer and a JSON scalar converted through a
// ValueSerializer.
func SerializeJSON(data []byte, s Serializer) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("fluentser: decode json: %w", err)
	}
	return Marshal(v, s)
}
