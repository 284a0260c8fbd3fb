package schedule

import (
	"github.com/i-satyam007/IPM/internal/model"
)

// allowedLeaveRatio is the fraction of a course's sessions a student may
// miss; allowed leaves are floored, never rounded up.
const allowedLeaveRatio = 0.20

// CalculateStats groups an already user-filtered session list by course
// code and folds the attendance map into per-course totals.
//
// Total counts every session for the code, past or future alike. Marks
// are optional: a session with no entry in the map counts toward
// neither attended nor leaves, so Attended+Leaves <= Total always holds.
func CalculateStats(sessions []model.ClassSession, attendance map[string]model.AttendanceStatus) map[string]model.CourseStat {
	stats := make(map[string]model.CourseStat)

	for _, s := range sessions {
		stat := stats[s.CourseCode]
		stat.Total++

		switch attendance[s.Key()] {
		case model.AttendancePresent:
			stat.Attended++
		case model.AttendanceAbsent:
			stat.Leaves++
		}

		stats[s.CourseCode] = stat
	}

	for code, stat := range stats {
		stat.AllowedLeaves = int(float64(stat.Total) * allowedLeaveRatio)
		stats[code] = stat
	}

	return stats
}
