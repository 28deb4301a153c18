package orchestra

import "testing"

func TestInteractionLog_AppendOrder(t *testing.T) {
	log := NewInteractionLog()

	log.Append(RoleUser, RoleOrchestrator, "first")
	log.Append(RoleOrchestrator, RoleCurriculum, "second")
	log.Append(RoleCurriculum, RoleOrchestrator, "third")

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Message != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, entries[i].Message)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Errorf("ids not strictly increasing at %d", i)
		}
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Errorf("timestamps not monotonic at %d", i)
		}
	}
}

func TestInteractionLog_IDsSurviveClear(t *testing.T) {
	log := NewInteractionLog()

	before := log.Append(RoleUser, RoleOrchestrator, "old journey")
	log.Clear()

	if log.Len() != 0 {
		t.Fatalf("expected empty log after clear, got %d entries", log.Len())
	}
	after := log.Append(RoleUser, RoleOrchestrator, "new journey")
	if after.ID <= before.ID {
		t.Errorf("id %d after clear not greater than %d before", after.ID, before.ID)
	}
}

func TestInteractionLog_DetailedEntry(t *testing.T) {
	log := NewInteractionLog()

	entry := log.AppendDetailed(RoleFeedback, RoleUser, "Feedback ready", "assessment-feedback", 0.85)
	if entry.Intent != "assessment-feedback" {
		t.Errorf("expected intent, got %q", entry.Intent)
	}
	if entry.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", entry.Confidence)
	}
}

func TestInteractionLog_EntriesReturnsCopy(t *testing.T) {
	log := NewInteractionLog()
	log.Append(RoleUser, RoleOrchestrator, "original")

	entries := log.Entries()
	entries[0].Message = "tampered"

	if log.Entries()[0].Message != "original" {
		t.Error("Entries must return a copy")
	}
}
