package parser

import (
	"testing"
)

// rosterRow builds a roster row with the email in column 3 and the
// section letter in column 9.
func rosterRow(email, section string) []string {
	row := make([]string, 10)
	row[rosterColEmail] = email
	row[rosterColSection] = section
	return row
}

func TestResolveProfile_SectionFromRoster(t *testing.T) {
	t.Parallel()

	studentRows := [][]string{
		rosterRow("first@ipm.ac.in", "A"),
		rosterRow("Target@IPM.ac.in", "B"),
	}

	profile := ResolveProfile("  target@ipm.ac.in ", studentRows, nil)
	if profile.Section != "B" {
		t.Fatalf("section: got %q want B", profile.Section)
	}
}

func TestResolveProfile_DefaultsToSectionA(t *testing.T) {
	t.Parallel()

	// Unknown email: explicit fail-open policy, not an error.
	profile := ResolveProfile("missing@ipm.ac.in", [][]string{rosterRow("other@ipm.ac.in", "B")}, nil)
	if profile.Section != "A" {
		t.Fatalf("missing email: got %q want A", profile.Section)
	}
	if len(profile.Electives) != 0 {
		t.Fatalf("expected empty electives, got %v", profile.Electives)
	}

	// Garbage section value also falls back to A.
	profile = ResolveProfile("x@ipm.ac.in", [][]string{rosterRow("x@ipm.ac.in", "C2")}, nil)
	if profile.Section != "A" {
		t.Fatalf("bad section value: got %q want A", profile.Section)
	}
}

func TestResolveProfile_FirstMatchingRowWins(t *testing.T) {
	t.Parallel()

	studentRows := [][]string{
		rosterRow("dup@ipm.ac.in", "B"),
		rosterRow("dup@ipm.ac.in", "A"),
	}

	if got := ResolveProfile("dup@ipm.ac.in", studentRows, nil).Section; got != "B" {
		t.Fatalf("first row must win: got %q", got)
	}
}

func TestResolveProfile_Electives(t *testing.T) {
	t.Parallel()

	electiveRows := map[string][][]string{
		"GT": {rosterRow("Target@ipm.ac.in ", "")},
		"NM": {rosterRow("someone-else@ipm.ac.in", "")},
	}

	profile := ResolveProfile("target@ipm.ac.in", nil, electiveRows)
	if !profile.HasElective("GT") {
		t.Fatalf("expected GT enrollment: %v", profile.Electives)
	}
	if profile.HasElective("NM") {
		t.Fatalf("unexpected NM enrollment: %v", profile.Electives)
	}
}
