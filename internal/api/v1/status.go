package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse system status response.
type StatusResponse struct {
	Configured bool   `json:"configured"` // spreadsheet id present
	CalendarID string `json:"calendarId"`
	Timezone   string `json:"timezone"`
}

// GetStatus reports whether the tracker is configured.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Configured: h.cfg.Google.SpreadsheetID != "",
		CalendarID: h.cfg.Google.CalendarID,
		Timezone:   h.cfg.Google.Timezone,
	})
}
