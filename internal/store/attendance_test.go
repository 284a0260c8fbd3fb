package store

import (
	"path/filepath"
	"testing"

	"github.com/i-satyam007/IPM/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAttendance_RoundTrip(t *testing.T) {
	s := testStore(t)

	if err := s.SetMark("alice@ipm.ac.in", "DT-1", model.AttendancePresent); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetMark("alice@ipm.ac.in", "DT-2", model.AttendanceAbsent); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Upsert flips the first mark.
	if err := s.SetMark("alice@ipm.ac.in", "DT-1", model.AttendanceAbsent); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	marks, err := s.GetAttendance("alice@ipm.ac.in")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(marks) != 2 || marks["DT-1"] != model.AttendanceAbsent {
		t.Fatalf("unexpected marks: %v", marks)
	}

	// Marks are per-user.
	other, err := s.GetAttendance("bob@ipm.ac.in")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty map for unknown user, got %v", other)
	}
}

func TestAttendance_DeleteAndValidate(t *testing.T) {
	s := testStore(t)

	if err := s.SetMark("alice@ipm.ac.in", "GT-3", "Maybe"); err == nil {
		t.Fatalf("invalid status must be rejected")
	}

	if err := s.SetMark("alice@ipm.ac.in", "GT-3", model.AttendancePresent); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.DeleteMark("alice@ipm.ac.in", "GT-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteMark("alice@ipm.ac.in", "GT-3"); err != nil {
		t.Fatalf("double delete must be a no-op: %v", err)
	}

	marks, _ := s.GetAttendance("alice@ipm.ac.in")
	if len(marks) != 0 {
		t.Fatalf("expected no marks, got %v", marks)
	}
}
