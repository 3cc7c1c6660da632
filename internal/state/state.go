package state

import "fmt"

// StructuralError reports a live payload item missing a key the
// projection depends on. The current emission is aborted rather than
// silently defaulting the field.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("failure whilst reading %s", e.Reason)
}

// asInt64 reads a JSON number as an integer id. Decoded payloads carry
// float64; synthesized entries carry int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// nestedID reads obj[key].id, e.g. a monitor's activeWorkspace id.
func nestedID(obj map[string]any, key string) (int64, bool) {
	nested, ok := obj[key].(map[string]any)
	if !ok {
		return 0, false
	}
	return asInt64(nested["id"])
}
