package api

import "testing"

// TestResultDefaults tests the default-on-missing access policy
func TestResultDefaults(t *testing.T) {
	res := Result{}

	if res.Str("name", "N/A") != "N/A" {
		t.Error("Missing string should fall back")
	}
	if res.Num("total_revenue") != 0 {
		t.Error("Missing number should default to 0")
	}
	if res.Int("total_projects") != 0 {
		t.Error("Missing int should default to 0")
	}
	if len(res.List("projects")) != 0 {
		t.Error("Missing list should be empty")
	}
	if len(res.Map("statistics")) != 0 {
		t.Error("Missing map should be empty")
	}
	if res.Success() {
		t.Error("Missing success should read as false")
	}
}

// TestResultWrongTypes tests that mistyped fields also fall back
func TestResultWrongTypes(t *testing.T) {
	res := Result{
		"name":     42,
		"projects": "oops",
		"success":  "yes",
	}

	if res.Str("name", "N/A") != "N/A" {
		t.Error("Non-string should fall back")
	}
	if res.List("projects") != nil {
		t.Error("Non-list should be empty")
	}
	if res.Success() {
		t.Error("Non-bool success should read as false")
	}
}

// TestErrorMessageFallback tests the generic error fallback
func TestErrorMessageFallback(t *testing.T) {
	if msg := (Result{"success": false}).ErrorMessage(); msg != "Unknown error" {
		t.Errorf("Expected fallback error, got %q", msg)
	}
	if msg := Failure("boom").ErrorMessage(); msg != "boom" {
		t.Errorf("Expected boom, got %q", msg)
	}
}

// TestResultNestedAccess tests nested map and list traversal
func TestResultNestedAccess(t *testing.T) {
	res := Result{
		"statistics": map[string]any{"total_projects": float64(3)},
		"projects": []any{
			map[string]any{"name": "Google"},
			"skip-me",
			map[string]any{"name": "Amazon"},
		},
	}

	if res.Map("statistics").Int("total_projects") != 3 {
		t.Error("Nested int access failed")
	}

	projects := res.List("projects")
	if len(projects) != 2 {
		t.Fatalf("Expected 2 object elements, got %d", len(projects))
	}
	if projects[1].Str("name", "") != "Amazon" {
		t.Error("Nested list access failed")
	}
}
