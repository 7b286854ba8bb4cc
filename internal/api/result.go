package api

// Result is the normalized shape every backend call resolves to. Successful
// calls carry the decoded response body; failed calls carry success=false and
// a human-readable error. Backend payloads are dynamic (the NLP layer is free
// to add entity keys), so access goes through default-on-missing helpers
// instead of fixed structs.
type Result map[string]any

// Failure builds a Result for a call that did not produce a usable response.
func Failure(message string) Result {
	return Result{"success": false, "error": message}
}

// Success reports whether the backend marked the call successful.
func (r Result) Success() bool {
	b, _ := r["success"].(bool)
	return b
}

// ErrorMessage returns the backend error text, or a generic fallback when the
// backend reported failure without saying why.
func (r Result) ErrorMessage() string {
	if s, ok := r["error"].(string); ok && s != "" {
		return s
	}
	return "Unknown error"
}

// Has reports whether a key is present at all.
func (r Result) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Str returns the string under key, or fallback when absent or not a string.
func (r Result) Str(key, fallback string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return fallback
}

// Num returns the number under key, or 0 when absent. JSON numbers decode as
// float64; integer values that arrive as float64 are covered too.
func (r Result) Num(key string) float64 {
	switch n := r[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// Int returns the number under key truncated to int, or 0 when absent.
func (r Result) Int(key string) int {
	return int(r.Num(key))
}

// Map returns the nested object under key, or an empty Result when absent.
func (r Result) Map(key string) Result {
	if m, ok := r[key].(map[string]any); ok {
		return Result(m)
	}
	return Result{}
}

// List returns the array of objects under key, or an empty slice when absent.
// Non-object elements are skipped.
func (r Result) List(key string) []Result {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	items := make([]Result, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			items = append(items, Result(m))
		}
	}
	return items
}
