package parser

import (
	"github.com/i-satyam007/IPM/internal/model"
)

// Roster sheet column layout.
const (
	rosterColEmail   = 3
	rosterColSection = 9
)

// ResolveProfile derives a student's section and elective enrollment
// from the roster sheets.
//
// The first section-roster row whose email matches decides the section.
// A missing match, or an unrecognized section value, falls back to "A".
// That default is deliberate policy, not an error path: a student absent
// from every roster still gets a usable schedule.
func ResolveProfile(email string, studentRows [][]string, electiveRows map[string][][]string) model.UserProfile {
	target := NormalizeEmail(email)

	profile := model.UserProfile{
		Email:     email,
		Section:   "A",
		Electives: make(map[string]bool),
	}

	for _, row := range studentRows {
		if NormalizeEmail(columnValue(row, rosterColEmail)) != target {
			continue
		}
		if s := sectionLetter(columnValue(row, rosterColSection)); s != "" {
			profile.Section = s
		}
		break
	}

	for code, rows := range electiveRows {
		if rosterHasEmail(rows, target) {
			profile.Electives[code] = true
		}
	}

	return profile
}

// rosterHasEmail reports membership of the normalized target email in
// one elective roster's email column.
func rosterHasEmail(rows [][]string, target string) bool {
	if target == "" {
		return false
	}
	for _, row := range rows {
		if NormalizeEmail(columnValue(row, rosterColEmail)) == target {
			return true
		}
	}
	return false
}
