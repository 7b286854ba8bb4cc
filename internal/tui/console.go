package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/internal/session"
	"github.com/salesops/salesdesk/pkg/models"
)

// historyDisplayLimit caps how many records the history pane shows. The
// session keeps the full history regardless.
const historyDisplayLimit = 5

var exampleCommands = []string{
	"Google ka iss week ka 1.2 lakh payment aa gaya",
	"Ramesh is assigned to Google project",
	"Google project active karo",
	"Dharmendra ke sare active project dikhado",
}

// Console is the free-text command interface. At most one submission is in
// flight: submits while pending are ignored, not queued.
type Console struct {
	input     textinput.Model
	pending   bool
	requestID string
	last      *models.CommandRecord
}

// NewConsole creates a focused console ready for input.
func NewConsole() Console {
	ti := textinput.New()
	ti.Placeholder = "e.g., Google ka iss week ka 1.2 lakh payment aa gaya"
	ti.CharLimit = 256
	ti.Focus()
	return Console{input: ti}
}

// Pending reports whether a submission is currently in flight.
func (c *Console) Pending() bool {
	return c.pending
}

// Submit starts a new submission cycle. It returns nil when a prior
// submission is still pending or the input is empty; the input text is left
// intact in that case so nothing is lost.
func (c *Console) Submit(ctx context.Context, client *api.Client, userID int) tea.Cmd {
	if c.pending {
		return nil
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}

	c.pending = true
	c.requestID = uuid.New().String()
	c.input.SetValue("")
	return submitCommandCmd(ctx, client, c.requestID, text, userID)
}

// Settle completes the in-flight submission. It returns true when the
// record belongs to the active request and should be appended to history.
func (c *Console) Settle(msg CommandSettledMsg) bool {
	if !c.pending || msg.RequestID != c.requestID {
		return false
	}
	c.pending = false
	record := msg.Record
	c.last = &record
	return true
}

// Update forwards input events to the text field.
func (c Console) Update(msg tea.Msg) (Console, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the console page: intro, input, latest result, and the
// recent history.
func (c Console) View(store *session.Store, indicator *LoadingIndicator) string {
	var sb strings.Builder

	sb.WriteString("Send natural language messages to automate sales operations.\n")
	sb.WriteString("Examples:\n")
	for _, example := range exampleCommands {
		sb.WriteString("  - " + example + "\n")
	}
	sb.WriteString("\n> " + c.input.View() + "\n\n")

	if c.pending {
		indicator.SetMessage("Processing message...")
		sb.WriteString(indicator.View() + "\n")
	} else if c.last != nil {
		sb.WriteString(RenderRecord(*c.last))
	}

	sb.WriteString("\nMessage History\n")
	sb.WriteString(strings.Repeat("─", 40) + "\n")
	recent := store.Recent(historyDisplayLimit)
	if len(recent) == 0 {
		sb.WriteString("No messages yet. Send a message to get started!\n")
		return sb.String()
	}
	for _, record := range recent {
		marker := "✓"
		if record.Execution != nil && !record.Execution.Success {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n",
			marker,
			record.SubmittedAt.Format("15:04"),
			truncate(record.RawText, 50)))
	}
	return sb.String()
}

// RenderRecord renders one settled command: the parsed intent, its extracted
// entities, and the execution result when present. Failed submissions render
// the error message only.
func RenderRecord(record models.CommandRecord) string {
	var sb strings.Builder

	if record.Parsed == nil {
		message := "Unknown error"
		if record.Execution != nil && record.Execution.Error != "" {
			message = record.Execution.Error
		}
		sb.WriteString("❌ Error: " + message + "\n")
		return sb.String()
	}

	sb.WriteString("✅ Message processed successfully!\n\n")
	sb.WriteString("Parsed Intent\n")
	sb.WriteString(fmt.Sprintf("  Intent: %s  Action: %s  Confidence: %.0f%%\n",
		record.Parsed.Intent,
		record.Parsed.Action,
		record.Parsed.Confidence*100))

	if len(record.Parsed.Entities) > 0 {
		sb.WriteString("\nExtracted Entities\n")
		for _, key := range sortedKeys(record.Parsed.Entities) {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", HumanizeKey(key), record.Parsed.Entities[key]))
		}
	}

	if record.Execution != nil && record.Execution.Success {
		sb.WriteString("\nExecution Result\n")
		sb.WriteString("  Status: " + record.Execution.Action + "\n")
		for _, key := range sortedKeys(record.Execution.Data) {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", HumanizeKey(key), record.Execution.Data[key]))
		}
	}

	return sb.String()
}

// HumanizeKey turns an entity key into a display label: underscores become
// spaces and each word is title-cased, e.g. "pending_payments_count" ->
// "Pending Payments Count".
func HumanizeKey(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
