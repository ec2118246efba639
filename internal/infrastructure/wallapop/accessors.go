package wallapop

import "strconv"

// Total accessors over the upstream's loosely typed JSON. Every helper
// tolerates a nil map, a missing key and a mistyped value, returning an
// explicit zero default instead, so normalization can walk any payload
// without panicking.

// obj returns a nested object, or nil.
func obj(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}

// arr returns a nested array, or nil.
func arr(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	v, _ := m[key].([]any)
	return v
}

// str returns a string field, or "".
func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// num returns a numeric field and whether it was present as a number.
func num(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m[key].(float64)
	return v, ok
}

// flag returns a boolean field, or false.
func flag(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, _ := m[key].(bool)
	return v
}

// text collapses the upstream's string-or-object text fields: a plain string
// is used as-is, a wrapped object yields its "original" sub-field. The union
// never propagates past this helper.
func text(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case map[string]any:
		return str(v, "original")
	default:
		return ""
	}
}

// ident reads an identifier that may arrive as a string or a number.
func ident(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
