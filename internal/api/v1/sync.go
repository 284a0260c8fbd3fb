package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-satyam007/IPM/internal/service/calendar"
	"github.com/i-satyam007/IPM/internal/service/schedule"
	"github.com/i-satyam007/IPM/internal/service/tracker"
)

// newEventsAPI is swapped by tests to avoid the real Calendar API.
var newEventsAPI = calendar.NewEventsAPI

// SyncCalendar pushes the user's future sessions into their calendar.
// POST /api/calendar/sync?email=...
func (h *Handler) SyncCalendar(c *gin.Context) {
	data, email, ok := h.fetchSchedule(c)
	if !ok {
		return
	}

	profile := tracker.ParseStudentProfile(email, data)
	filtered := schedule.FilterClassesForUser(data.Schedule, data.Courses, profile)

	api, err := newEventsAPI(c.Request.Context(), h.cfg.Google.CalendarID, requestToken(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res, err := calendar.NewReconciler(api, h.cfg.Google.Timezone).
		Sync(c.Request.Context(), filtered, data.Courses)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
