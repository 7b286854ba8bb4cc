package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/pkg/models"
)

func testClient() *api.Client {
	// Never dialed in these tests; the guard paths return before any call.
	return api.NewClient("http://127.0.0.1:0", time.Second)
}

// TestHumanizeKey tests the underscore-to-label rule
func TestHumanizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"pending_payments_count", "Pending Payments Count"},
		{"employee", "Employee"},
		{"amount", "Amount"},
		{"week_start_date", "Week Start Date"},
	}

	for _, tt := range tests {
		if got := HumanizeKey(tt.key); got != tt.want {
			t.Errorf("HumanizeKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// TestSubmitStartsPending tests the Idle -> Pending transition
func TestSubmitStartsPending(t *testing.T) {
	console := NewConsole()
	console.input.SetValue("Google project active karo")

	cmd := console.Submit(context.Background(), testClient(), 1)
	if cmd == nil {
		t.Fatal("Submit should return a command")
	}
	if !console.Pending() {
		t.Error("Console should be pending after submit")
	}
	if console.input.Value() != "" {
		t.Error("Input should clear on accepted submit")
	}
}

// TestSubmitWhilePendingIgnored tests that a second submit is dropped,
// not queued
func TestSubmitWhilePendingIgnored(t *testing.T) {
	console := NewConsole()
	console.input.SetValue("first message")
	if console.Submit(context.Background(), testClient(), 1) == nil {
		t.Fatal("First submit should be accepted")
	}
	firstID := console.requestID

	console.input.SetValue("second message")
	if cmd := console.Submit(context.Background(), testClient(), 1); cmd != nil {
		t.Error("Submit while pending should be ignored")
	}
	if console.requestID != firstID {
		t.Error("Pending request should be unchanged")
	}
	if console.input.Value() != "second message" {
		t.Error("Ignored submit should keep the typed text")
	}
}

// TestSubmitEmptyIgnored tests that blank input does not start a cycle
func TestSubmitEmptyIgnored(t *testing.T) {
	console := NewConsole()
	console.input.SetValue("   ")

	if cmd := console.Submit(context.Background(), testClient(), 1); cmd != nil {
		t.Error("Blank submit should be ignored")
	}
	if console.Pending() {
		t.Error("Console should stay idle on blank submit")
	}
}

// TestSettle tests the Pending -> Settled -> Idle transition
func TestSettle(t *testing.T) {
	console := NewConsole()
	console.pending = true
	console.requestID = "req-1"

	record := models.CommandRecord{ID: "req-1", RawText: "hello"}
	if !console.Settle(CommandSettledMsg{RequestID: "req-1", Record: record}) {
		t.Fatal("Settle should accept the active request")
	}
	if console.Pending() {
		t.Error("Console should be idle after settling")
	}
	if console.last == nil || console.last.RawText != "hello" {
		t.Error("Settled record should become the displayed result")
	}
}

// TestSettleIgnoresStaleRequest tests that only the active request settles
func TestSettleIgnoresStaleRequest(t *testing.T) {
	console := NewConsole()
	console.pending = true
	console.requestID = "req-2"

	if console.Settle(CommandSettledMsg{RequestID: "req-1", Record: models.CommandRecord{}}) {
		t.Error("Settle should reject a stale request id")
	}
	if !console.Pending() {
		t.Error("Console should stay pending on a stale settle")
	}
}

// TestRenderRecordAssignment tests the full rendering scenario for a
// successful assignment command
func TestRenderRecordAssignment(t *testing.T) {
	record := models.CommandRecord{
		RawText: "Ramesh is assigned to Google project",
		Parsed: &models.ParsedIntent{
			Intent:     "assignment",
			Action:     "assign_employee",
			Confidence: 0.92,
			Entities:   map[string]any{"employee": "Ramesh", "project": "Google"},
		},
		Execution: &models.ExecutionResult{
			Success: true,
			Action:  "assigned",
			Data:    map[string]any{"employee": "Ramesh", "project": "Google"},
		},
	}

	out := RenderRecord(record)
	for _, want := range []string{
		"Intent: assignment",
		"Action: assign_employee",
		"Confidence: 92%",
		"Employee: Ramesh",
		"Project: Google",
		"Status: assigned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered record missing %q:\n%s", want, out)
		}
	}
}

// TestRenderRecordFailure tests that failures render the error only
func TestRenderRecordFailure(t *testing.T) {
	record := models.CommandRecord{
		RawText:   "gibberish",
		Execution: &models.ExecutionResult{Success: false, Error: "could not parse message"},
	}

	out := RenderRecord(record)
	if !strings.Contains(out, "could not parse message") {
		t.Errorf("Failure should render the error message:\n%s", out)
	}
	if strings.Contains(out, "Parsed Intent") {
		t.Error("Failure should not render intent sections")
	}
}

// TestRenderRecordWithoutExecution tests a parsed command the backend chose
// not to execute
func TestRenderRecordWithoutExecution(t *testing.T) {
	record := models.CommandRecord{
		RawText: "Google project active karo",
		Parsed: &models.ParsedIntent{
			Intent:     "status_change",
			Action:     "set_status",
			Confidence: 0.8,
			Entities:   map[string]any{"project": "Google"},
		},
	}

	out := RenderRecord(record)
	if !strings.Contains(out, "Intent: status_change") {
		t.Errorf("Parsed section missing:\n%s", out)
	}
	if strings.Contains(out, "Execution Result") {
		t.Error("No execution section expected without an execution result")
	}
}
