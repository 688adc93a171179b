package bestiary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseStatBlock reads a monster document by normalized key ("hit_points",
// "HitPoints" and "hitpoints" are the same field). Armor class appears as a
// number, an object with a value, or a list of those; the first entry wins.
func parseStatBlock(raw []byte) (*StatBlock, error) {
	fields, err := normalizedFields(raw)
	if err != nil {
		return nil, err
	}

	block := &StatBlock{}
	if v, ok := fields["key"]; ok {
		_ = json.Unmarshal(v, &block.Key)
	} else if v, ok := fields["index"]; ok {
		_ = json.Unmarshal(v, &block.Key)
	}
	if v, ok := fields["name"]; ok {
		_ = json.Unmarshal(v, &block.Name)
	}
	if v, ok := fields["hitpoints"]; ok {
		if block.HitPoints, err = readInt(v); err != nil {
			return nil, fmt.Errorf("hit points: %w", err)
		}
	}
	if v, ok := fields["armorclass"]; ok {
		if block.ArmorClass, err = readInt(v); err != nil {
			return nil, fmt.Errorf("armor class: %w", err)
		}
	}
	if v, ok := fields["dexterity"]; ok {
		if block.Dexterity, err = readInt(v); err != nil {
			return nil, fmt.Errorf("dexterity: %w", err)
		}
	}

	if block.Name == "" || block.HitPoints <= 0 {
		return nil, fmt.Errorf("incomplete stat block")
	}
	return block, nil
}

func normalizedFields(raw []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(doc))
	for k, v := range doc {
		out[normalizeKey(k)] = v
	}
	return out, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "_", ""))
}

// readInt accepts a number, an object carrying "value", or a list whose first
// element is one of those
func readInt(v json.RawMessage) (int32, error) {
	trimmed := strings.TrimSpace(string(v))
	switch {
	case trimmed == "" || trimmed == "null":
		return 0, nil
	case strings.HasPrefix(trimmed, "["):
		var list []json.RawMessage
		if err := json.Unmarshal(v, &list); err != nil {
			return 0, err
		}
		if len(list) == 0 {
			return 0, nil
		}
		return readInt(list[0])
	case strings.HasPrefix(trimmed, "{"):
		fields, err := normalizedFields(v)
		if err != nil {
			return 0, err
		}
		inner, ok := fields["value"]
		if !ok {
			return 0, fmt.Errorf("object without value")
		}
		return readInt(inner)
	default:
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			return 0, err
		}
		return int32(n), nil
	}
}
