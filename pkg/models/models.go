package models

import "time"

// Role is a backend user role.
type Role string

const (
	RoleManager   Role = "manager"
	RoleExecutive Role = "executive"
)

// UserRef identifies a backend user as returned by /api/users.
type UserRef struct {
	ID   int
	Name string
	Role Role
}

// Statistics holds the headline numbers of a dashboard.
type Statistics struct {
	TotalProjects        int
	ActiveProjects       int
	TotalRevenue         float64
	PendingPaymentsCount int
}

// ProjectSummary is one row of a dashboard's project table.
// EstimatedValue is nil when the backend did not report a value,
// which is distinct from a reported zero.
type ProjectSummary struct {
	Name           string
	Client         string
	Status         string
	EstimatedValue *float64
}

// DashboardSnapshot is a point-in-time read of a user's dashboard.
// Snapshots are never cached; every view request produces a fresh one.
type DashboardSnapshot struct {
	Statistics Statistics
	Projects   []ProjectSummary
}

// ParsedIntent is the backend NLP classification of a command.
// Entities carries every extracted key the backend returned beyond the
// well-known fields; the client never validates its contents.
type ParsedIntent struct {
	Intent     string
	Action     string
	Confidence float64
	Entities   map[string]any
}

// ExecutionResult describes what the backend did with a parsed command.
type ExecutionResult struct {
	Success bool
	Action  string
	Data    map[string]any
	Error   string
}

// CommandRecord is one submitted console command. Records are immutable
// after creation and appended to the session history, never removed.
// Failed submissions are recorded too, with Execution.Success = false.
type CommandRecord struct {
	ID          string
	RawText     string
	SubmittedAt time.Time
	Parsed      *ParsedIntent
	Execution   *ExecutionResult
}
