package parser

import (
	"testing"

	"github.com/i-satyam007/IPM/internal/model"
)

func TestParseCatalog_Basic(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"S.No", "Course Name", "Credits", "Code", "Type"},
		{"1", "Design Thinking", "3", "DT", "Core"},
		{"2", "Game Theory", "2", "GT", "Elective"},
	}

	courses := ParseCatalog(rows)

	dt, ok := courses["DT"]
	if !ok {
		t.Fatalf("DT missing")
	}
	want := model.Course{Code: "DT", Name: "Design Thinking", Credits: 3, Type: model.CourseTypeCore, RawType: "Core"}
	if dt != want {
		t.Fatalf("DT mismatch: got %+v want %+v", dt, want)
	}
	if courses["GT"].Type != model.CourseTypeElective {
		t.Fatalf("GT type: got %v", courses["GT"].Type)
	}
}

func TestParseCatalog_BlankCodeRowSkipped(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"S.No", "Course Name", "Credits", "Code", "Type"},
		{"1", "Orphan Course", "3", "", "Core"},
		{"2", "Short Row"},
		{"3", "Design Thinking", "3", "DT", "Core"},
	}

	courses := ParseCatalog(rows)
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d: %v", len(courses), courses)
	}
}

func TestParseCatalog_CreditsDefaultAndUnknownType(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"header"},
		{"1", "Financial Modelling", "n/a", "FIN-1", "Compl.\nElective"},
	}

	courses := ParseCatalog(rows)
	fin := courses["FIN-1"]

	if fin.Credits != 0 {
		t.Fatalf("credits: got %d want 0", fin.Credits)
	}
	if fin.Type != model.CourseTypeUnknown {
		t.Fatalf("type: got %v want Unknown", fin.Type)
	}
	// Newlines in the type column collapse to single spaces.
	if fin.RawType != "Compl. Elective" {
		t.Fatalf("raw type: got %q", fin.RawType)
	}
	if !fin.IsElectiveLike() {
		t.Fatalf("Compl. Elective must count as elective-like")
	}
}

func TestParseCatalog_DuplicateCodeLastWins(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"header"},
		{"1", "Old Name", "2", "DT", "Core"},
		{"2", "New Name", "3", "DT", "Core"},
	}

	courses := ParseCatalog(rows)
	if courses["DT"].Name != "New Name" {
		t.Fatalf("duplicate code: got %q want New Name", courses["DT"].Name)
	}
}
