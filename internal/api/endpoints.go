package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/salesops/salesdesk/pkg/models"
)

// reservedParsedKeys are the well-known fields of a parsed NLP message; every
// other key in the parsed object is an extracted entity.
var reservedParsedKeys = map[string]struct{}{
	"intent":           {},
	"action":           {},
	"confidence":       {},
	"original_message": {},
	"timestamp":        {},
}

// Health fetches the backend health endpoint. Used only to render
// connectivity status; it never gates other calls.
func (c *Client) Health(ctx context.Context) Result {
	return c.Call(ctx, http.MethodGet, "/health", nil)
}

// Healthy interprets a /health result. The endpoint predates the success
// envelope, so a bare {status, version} body also counts as connected.
func Healthy(res Result) bool {
	return res.Success() || res.Has("status")
}

// Users fetches the backend user list.
func (c *Client) Users(ctx context.Context) ([]models.UserRef, error) {
	res := c.Call(ctx, http.MethodGet, "/api/users", nil)
	if !res.Success() {
		return nil, fmt.Errorf("fetch users: %s", res.ErrorMessage())
	}

	raw := res.List("users")
	users := make([]models.UserRef, 0, len(raw))
	for _, u := range raw {
		users = append(users, models.UserRef{
			ID:   u.Int("id"),
			Name: u.Str("name", "N/A"),
			Role: models.Role(u.Str("role", string(models.RoleExecutive))),
		})
	}
	return users, nil
}

// ManagerDashboard fetches the raw manager dashboard payload.
func (c *Client) ManagerDashboard(ctx context.Context, managerID int) Result {
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/api/manager/dashboard/%d", managerID), nil)
}

// ExecutiveDashboard fetches the raw executive dashboard payload.
func (c *Client) ExecutiveDashboard(ctx context.Context, executiveID int) Result {
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/api/executive/dashboard/%d", executiveID), nil)
}

// MessageOutcome is the settled result of one natural-language command.
type MessageOutcome struct {
	Success   bool
	Error     string
	Parsed    *models.ParsedIntent
	Execution *models.ExecutionResult
}

// SendMessage submits a free-text command for the given user. The submission
// is at most once: a transport failure is reported, never replayed.
func (c *Client) SendMessage(ctx context.Context, message string, userID int) MessageOutcome {
	res := c.Call(ctx, http.MethodPost, "/api/mcp/message", map[string]any{
		"message": message,
		"user_id": userID,
	})

	if !res.Success() {
		return MessageOutcome{Success: false, Error: res.ErrorMessage()}
	}

	outcome := MessageOutcome{Success: true}
	if parsed := res.Map("parsed"); len(parsed) > 0 {
		outcome.Parsed = decodeParsedIntent(parsed)
	}
	if execution := res.Map("execution"); len(execution) > 0 {
		outcome.Execution = decodeExecution(execution)
	}
	return outcome
}

func decodeParsedIntent(parsed Result) *models.ParsedIntent {
	entities := make(map[string]any)
	for key, value := range parsed {
		if _, reserved := reservedParsedKeys[key]; reserved {
			continue
		}
		entities[key] = value
	}
	return &models.ParsedIntent{
		Intent:     parsed.Str("intent", "N/A"),
		Action:     parsed.Str("action", "N/A"),
		Confidence: parsed.Num("confidence"),
		Entities:   entities,
	}
}

func decodeExecution(execution Result) *models.ExecutionResult {
	return &models.ExecutionResult{
		Success: execution.Success(),
		Action:  execution.Str("action", "N/A"),
		Data:    execution.Map("data"),
		Error:   execution.Str("error", ""),
	}
}
