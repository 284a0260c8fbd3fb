package model

import "strings"

// ElectiveLike reports whether a raw catalog type string denotes an
// elective-style course ("Elective", "Compl. Elective", ...).
func ElectiveLike(rawType string) bool {
	t := strings.ToLower(rawType)
	return strings.Contains(t, "elective") || strings.Contains(t, "compl.")
}

// CourseType classification of a catalog course.
type CourseType string

const (
	CourseTypeCore     CourseType = "Core"
	CourseTypeElective CourseType = "Elective"
	CourseTypeUnknown  CourseType = "Unknown"
)

// Course is one row of the course catalog, keyed by code.
// Codes are assumed unique within one catalog; last write wins on duplicates.
type Course struct {
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	Credits int        `json:"credits"`
	Type    CourseType `json:"type"`
	// RawType keeps the whitespace-normalized free text from the sheet.
	// Elective roster matching runs on this, not on Type: courses typed
	// "Compl. Elective" normalize to Unknown but still carry rosters.
	RawType string `json:"rawType,omitempty"`
}

// IsElectiveLike reports whether the course should be matched against
// elective roster sheets.
func (c Course) IsElectiveLike() bool { return ElectiveLike(c.RawType) }

// ClassSession is a single timetable grid entry.
// Not globally unique by itself; (CourseCode, SessionNumber) is the
// identity used for attendance keys.
type ClassSession struct {
	Date          string `json:"date"` // sheet-native format, not necessarily ISO
	TimeSlot      string `json:"timeSlot"`
	CourseCode    string `json:"courseCode"`
	SessionNumber string `json:"sessionNumber"`
	// Section is "A" or "B"; empty means common to all sections.
	Section     string `json:"section,omitempty"`
	RawText     string `json:"rawText"`
	IsCancelled bool   `json:"isCancelled"`
}

// Key returns the attendance-record key for the session.
func (s ClassSession) Key() string {
	return s.CourseCode + "-" + s.SessionNumber
}

// Signature returns the deterministic key used to correlate the session
// with a remote calendar event across sync runs.
func (s ClassSession) Signature() string {
	return s.Date + "-" + s.TimeSlot + "-" + s.CourseCode
}

// UserProfile is the per-request enrollment view of one student.
type UserProfile struct {
	Email   string `json:"email"`
	Section string `json:"section"` // "A" or "B"; defaults to "A" when unresolved
	// Electives holds course codes the student is enrolled in.
	Electives map[string]bool `json:"electives"`
}

// HasElective reports elective enrollment by course code.
func (p UserProfile) HasElective(code string) bool {
	return p.Electives[code]
}

// AttendanceStatus client-recorded mark for one session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// CourseStat is the derived attendance summary for one course.
// Recomputed on every aggregation call, never persisted.
type CourseStat struct {
	Total         int `json:"total"`
	Attended      int `json:"attended"`
	Leaves        int `json:"leaves"`
	AllowedLeaves int `json:"allowedLeaves"` // floor(Total * 0.20)
}

// Percentage returns the attendance percentage, with Total == 0 treated
// as 0 rather than a division by zero.
func (s CourseStat) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Attended)/float64(s.Total)*100 + 0.5)
}
