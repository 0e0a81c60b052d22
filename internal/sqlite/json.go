package sqlite

import (
	"encoding/json"
	"fmt"
)

// encodeProperties serializes a property map to its JSON column form.
// A nil map encodes as an empty object.
func encodeProperties(props map[string]any) (string, error) {
	if len(props) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(props)
	if err != nil {
		return "", fmt.Errorf("encoding properties: %w", err)
	}
	return string(data), nil
}

// decodeProperties parses the JSON column form back into a property map.
// An empty or "{}" column decodes as nil so that round-tripping an asset
// without properties stays stable.
func decodeProperties(raw string) (map[string]any, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	var props map[string]any
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return props, nil
}
