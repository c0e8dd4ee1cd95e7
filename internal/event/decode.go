package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload into T.
// Payloads published on the MemoryBus already carry T (or *T); payloads read
// back from the dead-letter log arrive as raw JSON or generic maps.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode %T: nil payload", out)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, json.Unmarshal(raw, &out)
}
