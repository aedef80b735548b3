package schema

// These accessors read values out of a payload that already passed Validate.
// They return zero values for anything Validate would have rejected.

// Int returns payload[field] as an int64.
func Int(payload map[string]any, field string) int64 {
	i, _ := toInt(payload[field])
	return i
}

// Float returns payload[field] as a float64.
func Float(payload map[string]any, field string) float64 {
	f, _ := toFloat(payload[field])
	return f
}

// Str returns payload[field] as a string.
func Str(payload map[string]any, field string) string {
	s, _ := payload[field].(string)
	return s
}
