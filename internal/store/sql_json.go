package store

import (
	"encoding/json"
	"fmt"
)

// marshalStringList encodes an ordered string list for a jsonb column. A nil
// slice is stored as an empty array so that reads never yield JSON null.
func marshalStringList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}

	return payload, nil
}

// unmarshalStringList decodes a jsonb column back into an ordered string
// list. Empty or NULL columns decode to an empty slice.
func unmarshalStringList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}

	return out, nil
}
