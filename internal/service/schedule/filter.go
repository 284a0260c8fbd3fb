// Package schedule filters the parsed session list down to one student
// and aggregates attendance statistics over it.
package schedule

import (
	"github.com/i-satyam007/IPM/internal/model"
)

// FilterClassesForUser keeps the sessions relevant to one profile.
//
// The policy is fail-open on purpose: a session whose course is missing
// from the catalog, or whose course type is neither Core nor Elective,
// is included by default. Tightening this to fail-closed would silently
// change user-visible schedules.
func FilterClassesForUser(sessions []model.ClassSession, courses map[string]model.Course, profile model.UserProfile) []model.ClassSession {
	var out []model.ClassSession
	for _, s := range sessions {
		if includeSession(s, courses, profile) {
			out = append(out, s)
		}
	}
	return out
}

func includeSession(s model.ClassSession, courses map[string]model.Course, profile model.UserProfile) bool {
	course, ok := courses[s.CourseCode]
	if !ok {
		return true // unknown course: include by default
	}

	switch course.Type {
	case model.CourseTypeElective:
		return profile.HasElective(s.CourseCode)
	case model.CourseTypeCore:
		if s.Section == "" {
			return true // common session, all sections attend
		}
		return s.Section == profile.Section
	default:
		return true
	}
}
