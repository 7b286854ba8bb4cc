package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/internal/dashboard"
	"github.com/salesops/salesdesk/pkg/models"
)

// Message types for async backend calls
type (
	// UsersLoadedMsg contains the fetched user list for the sidebar.
	UsersLoadedMsg struct {
		Users []models.UserRef
		Err   string
	}

	// HealthLoadedMsg contains the backend connectivity status.
	HealthLoadedMsg struct {
		Connected bool
		Version   string
	}

	// DashboardLoadedMsg contains a fresh dashboard snapshot or the error
	// that ended the render pass.
	DashboardLoadedMsg struct {
		Snapshot *models.DashboardSnapshot
		Err      string
	}

	// CommandSettledMsg reports that a submitted command received a backend
	// response, successful or not.
	CommandSettledMsg struct {
		RequestID string
		Record    models.CommandRecord
	}

	// TickMsg drives the spinner animation.
	TickMsg time.Time
)

// loadUsersCmd fetches the user list asynchronously.
func loadUsersCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := client.Users(ctx)
		if err != nil {
			return UsersLoadedMsg{Err: err.Error()}
		}
		return UsersLoadedMsg{Users: users}
	}
}

// checkHealthCmd probes backend connectivity asynchronously.
func checkHealthCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		res := client.Health(ctx)
		return HealthLoadedMsg{
			Connected: api.Healthy(res),
			Version:   res.Str("version", "unknown"),
		}
	}
}

// loadDashboardCmd fetches a role-specific dashboard snapshot asynchronously.
func loadDashboardCmd(ctx context.Context, client *api.Client, role models.Role, userID int) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := dashboard.FetchForRole(ctx, client, role, userID)
		if err != nil {
			return DashboardLoadedMsg{Err: err.Error()}
		}
		return DashboardLoadedMsg{Snapshot: snapshot}
	}
}

// submitCommandCmd submits one free-text command asynchronously. A record is
// built whatever the outcome, so failed submissions stay in the audit trail.
func submitCommandCmd(ctx context.Context, client *api.Client, requestID, text string, userID int) tea.Cmd {
	return func() tea.Msg {
		outcome := client.SendMessage(ctx, text, userID)
		record := models.CommandRecord{
			ID:          requestID,
			RawText:     text,
			SubmittedAt: time.Now(),
			Parsed:      outcome.Parsed,
			Execution:   outcome.Execution,
		}
		if !outcome.Success {
			record.Execution = &models.ExecutionResult{Success: false, Error: outcome.Error}
		}
		return CommandSettledMsg{RequestID: requestID, Record: record}
	}
}

// tickCmd creates a ticker for spinner animation
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
