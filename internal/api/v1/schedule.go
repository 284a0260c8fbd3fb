package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/i-satyam007/IPM/internal/model"
	"github.com/i-satyam007/IPM/internal/service/schedule"
	"github.com/i-satyam007/IPM/internal/service/tracker"
)

// ScheduleResponse is the personalized schedule view.
type ScheduleResponse struct {
	Profile  profileView             `json:"profile"`
	Courses  map[string]model.Course `json:"courses"`
	Schedule []model.ClassSession    `json:"schedule"`
	Debug    []string                `json:"debug,omitempty"`
}

type profileView struct {
	Email     string   `json:"email"`
	Section   string   `json:"section"`
	Electives []string `json:"electives"`
}

// GetSchedule returns the user's filtered schedule.
// GET /api/schedule?email=...&debug=1
func (h *Handler) GetSchedule(c *gin.Context) {
	data, email, ok := h.fetchSchedule(c)
	if !ok {
		return
	}

	profile := tracker.ParseStudentProfile(email, data)
	filtered := schedule.FilterClassesForUser(data.Schedule, data.Courses, profile)

	resp := ScheduleResponse{
		Profile:  newProfileView(profile),
		Courses:  data.Courses,
		Schedule: filtered,
	}
	if c.Query("debug") != "" {
		resp.Debug = data.Debug
	}

	c.JSON(http.StatusOK, resp)
}

// StatsResponse per-course attendance statistics.
type StatsResponse struct {
	Profile profileView                 `json:"profile"`
	Stats   map[string]model.CourseStat `json:"stats"`
}

// GetStats returns per-course attendance statistics computed from the
// user's filtered sessions and their stored marks.
// GET /api/stats?email=...
func (h *Handler) GetStats(c *gin.Context) {
	data, email, ok := h.fetchSchedule(c)
	if !ok {
		return
	}

	profile := tracker.ParseStudentProfile(email, data)
	filtered := schedule.FilterClassesForUser(data.Schedule, data.Courses, profile)

	marks, err := h.store.GetAttendance(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Profile: newProfileView(profile),
		Stats:   schedule.CalculateStats(filtered, marks),
	})
}

func newProfileView(p model.UserProfile) profileView {
	electives := make([]string, 0, len(p.Electives))
	for code := range p.Electives {
		electives = append(electives, code)
	}
	sort.Strings(electives)

	return profileView{Email: p.Email, Section: p.Section, Electives: electives}
}
