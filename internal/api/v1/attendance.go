package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/i-satyam007/IPM/internal/model"
)

// MarkRequest one attendance mark write.
type MarkRequest struct {
	Email      string `json:"email"`
	SessionKey string `json:"sessionKey"` // courseCode-sessionNumber
	Status     string `json:"status"`     // Present | Absent
}

// GetAttendance returns the stored marks for one user.
// GET /api/attendance?email=...
func (h *Handler) GetAttendance(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email parameter"})
		return
	}

	marks, err := h.store.GetAttendance(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": marks})
}

// PutAttendance upserts one mark.
// PUT /api/attendance
func (h *Handler) PutAttendance(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.SessionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and sessionKey are required"})
		return
	}

	if err := h.store.SetMark(req.Email, req.SessionKey, model.AttendanceStatus(req.Status)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteAttendance removes one mark.
// DELETE /api/attendance/:key?email=...
func (h *Handler) DeleteAttendance(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	key := c.Param("key")
	if email == "" || key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and key are required"})
		return
	}

	if err := h.store.DeleteMark(email, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
