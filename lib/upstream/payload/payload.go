package payload

import (
	"encoding/json"
	"time"

	"wired-people-backend/lib/utils/helpers"
)

// Payload is a raw backend object. Field names vary per endpoint between
// PascalCase, camelCase and legacy aliases, so every read goes through an
// ordered accessor chain: the first present, non-empty key wins.
type Payload map[string]interface{}

func Parse(raw json.RawMessage) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p Payload) Str(keys ...string) string {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func (p Payload) Num(keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if f, ok := value.(float64); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func (p Payload) Int(keys ...string) (int, bool) {
	f, ok := p.Num(keys...)
	return int(f), ok
}

func (p Payload) Bool(keys ...string) bool {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if b, ok := value.(bool); ok {
				return b
			}
		}
	}
	return false
}

func (p Payload) Time(keys ...string) *time.Time {
	raw := p.Str(keys...)
	if raw == "" {
		return nil
	}
	if t, ok := helpers.ParseUpstreamTime(raw); ok {
		return &t
	}
	return nil
}

func (p Payload) StrSlice(keys ...string) []string {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if items, ok := value.([]interface{}); ok {
				result := make([]string, 0, len(items))
				for _, item := range items {
					if s, ok := item.(string); ok {
						result = append(result, s)
					}
				}
				return result
			}
		}
	}
	return nil
}

func (p Payload) ObjSlice(keys ...string) []Payload {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if items, ok := value.([]interface{}); ok {
				result := make([]Payload, 0, len(items))
				for _, item := range items {
					if obj, ok := item.(map[string]interface{}); ok {
						result = append(result, Payload(obj))
					}
				}
				return result
			}
		}
	}
	return nil
}

func (p Payload) OptInt(keys ...string) *int {
	if value, ok := p.Int(keys...); ok {
		return &value
	}
	return nil
}

func (p Payload) OptFloat(keys ...string) *float64 {
	if value, ok := p.Num(keys...); ok {
		return &value
	}
	return nil
}
