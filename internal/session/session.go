// Package session holds the process-local interactive session: the active
// identity and the append-only command history. One interactive flow is the
// only writer, so the store is deliberately lock-free.
package session

import "github.com/salesops/salesdesk/pkg/models"

// DefaultUserID is the identity assumed before any user list has been
// fetched.
const DefaultUserID = 1

// Store is the per-process session state. It lives for the process lifetime
// and is never persisted.
type Store struct {
	activeUserID int
	activeRole   models.Role
	history      []models.CommandRecord
}

// New creates a session with the default identity: user 1, manager role.
func New() *Store {
	return &Store{
		activeUserID: DefaultUserID,
		activeRole:   models.RoleManager,
	}
}

// ActiveUserID returns the currently selected user id.
func (s *Store) ActiveUserID() int {
	return s.activeUserID
}

// ActiveRole returns the role of the currently selected user.
func (s *Store) ActiveRole() models.Role {
	return s.activeRole
}

// SetActiveUser replaces the active identity. Id and role always change
// together; the role is never set without a corresponding user observation.
func (s *Store) SetActiveUser(user models.UserRef) {
	s.activeUserID = user.ID
	s.activeRole = user.Role
}

// Append adds a record to the command history. Prior records are never
// mutated or removed; display capping happens at render time only.
func (s *Store) Append(record models.CommandRecord) {
	s.history = append(s.history, record)
}

// Len returns the full history length.
func (s *Store) Len() int {
	return len(s.history)
}

// Recent returns a copy of the last n records in submission order,
// most-recent-last. It never mutates the history.
func (s *Store) Recent(n int) []models.CommandRecord {
	if n <= 0 || len(s.history) == 0 {
		return nil
	}
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.CommandRecord, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}
