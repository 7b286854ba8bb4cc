package session

import (
	"testing"
	"time"

	"github.com/salesops/salesdesk/pkg/models"
)

func record(id, text string) models.CommandRecord {
	return models.CommandRecord{ID: id, RawText: text, SubmittedAt: time.Now()}
}

// TestDefaultIdentity tests the hardcoded initial session state
func TestDefaultIdentity(t *testing.T) {
	store := New()

	if store.ActiveUserID() != DefaultUserID {
		t.Errorf("Expected default user id %d, got %d", DefaultUserID, store.ActiveUserID())
	}
	if store.ActiveRole() != models.RoleManager {
		t.Errorf("Expected default role manager, got %s", store.ActiveRole())
	}
	if store.Len() != 0 {
		t.Error("New session should have empty history")
	}
}

// TestSetActiveUser tests that id and role change together
func TestSetActiveUser(t *testing.T) {
	store := New()

	store.SetActiveUser(models.UserRef{ID: 7, Name: "Ramesh", Role: models.RoleExecutive})

	if store.ActiveUserID() != 7 {
		t.Errorf("Expected user id 7, got %d", store.ActiveUserID())
	}
	if store.ActiveRole() != models.RoleExecutive {
		t.Errorf("Expected role executive, got %s", store.ActiveRole())
	}
}

// TestHistoryOrdering tests that Recent preserves submission order,
// most-recent-last
func TestHistoryOrdering(t *testing.T) {
	store := New()
	store.Append(record("1", "C1"))
	store.Append(record("2", "C2"))
	store.Append(record("3", "C3"))

	recent := store.Recent(5)
	if len(recent) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(recent))
	}
	for i, want := range []string{"C1", "C2", "C3"} {
		if recent[i].RawText != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, recent[i].RawText)
		}
	}

	last2 := store.Recent(2)
	if len(last2) != 2 || last2[0].RawText != "C2" || last2[1].RawText != "C3" {
		t.Errorf("Recent(2) wrong: %+v", last2)
	}
}

// TestRecentDoesNotMutate tests that Recent is a restartable read
func TestRecentDoesNotMutate(t *testing.T) {
	store := New()
	store.Append(record("1", "C1"))
	store.Append(record("2", "C2"))

	first := store.Recent(2)
	first[0].RawText = "tampered"

	again := store.Recent(2)
	if again[0].RawText != "C1" {
		t.Error("Recent should return a copy, not a view into history")
	}
	if store.Len() != 2 {
		t.Error("Recent should not change history length")
	}
}

// TestRecentEdgeCases tests empty history and non-positive n
func TestRecentEdgeCases(t *testing.T) {
	store := New()

	if store.Recent(5) != nil {
		t.Error("Recent on empty history should be nil")
	}

	store.Append(record("1", "C1"))
	if store.Recent(0) != nil {
		t.Error("Recent(0) should be nil")
	}
	if store.Recent(-1) != nil {
		t.Error("Recent(-1) should be nil")
	}
}
