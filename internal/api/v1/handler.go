// Package v1 exposes the tracker pipeline over HTTP. Handlers are thin:
// they assemble a per-request pipeline from the caller's bearer token
// and hand off to the services.
package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/i-satyam007/IPM/internal/config"
	"github.com/i-satyam007/IPM/internal/service/tracker"
	"github.com/i-satyam007/IPM/internal/sheets"
	"github.com/i-satyam007/IPM/internal/store"
)

// Handler v1 API handler.
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	downloads *exportDownloadStore
	// newSource lets tests swap in a fake workbook backend.
	newSource func(c *gin.Context, token string) (sheets.Source, error)
}

// NewHandler creates the v1 API handler.
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	h := &Handler{
		store:     st,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
	h.newSource = func(c *gin.Context, token string) (sheets.Source, error) {
		return sheets.NewClient(c.Request.Context(), cfg.Google.SpreadsheetID, token)
	}
	return h
}

// RegisterRoutes registers the v1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System state
	router.GET("/status", h.GetStatus)

	// Schedule pipeline
	authed := router.Group("", h.requireToken)
	authed.GET("/schedule", h.GetSchedule)
	authed.GET("/stats", h.GetStats)
	authed.POST("/calendar/sync", h.SyncCalendar)
	authed.POST("/export", h.Export)

	// Attendance marks (server-side copy of the client's map)
	router.GET("/attendance", h.GetAttendance)
	router.PUT("/attendance", h.PutAttendance)
	router.DELETE("/attendance/:key", h.DeleteAttendance)

	// Export download by one-time token
	router.GET("/export/download/:token", h.DownloadExport)
}

// requireToken pulls the bearer token off the request. A missing token
// is fatal immediately, before any remote call.
func (h *Handler) requireToken(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if auth == "" || token == "" || token == auth {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	c.Set("accessToken", token)
	c.Next()
}

// requestToken returns the token requireToken stashed on the context.
func requestToken(c *gin.Context) string {
	return c.GetString("accessToken")
}

// fetchSchedule runs the whole extraction pipeline for this request's
// token and the email query parameter.
func (h *Handler) fetchSchedule(c *gin.Context) (*tracker.ScheduleData, string, bool) {
	if h.cfg.Google.SpreadsheetID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "spreadsheet id not configured"})
		return nil, "", false
	}

	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email parameter"})
		return nil, "", false
	}

	source, err := h.newSource(c, requestToken(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, "", false
	}

	data, err := tracker.New(source).FetchFullSchedule(c.Request.Context())
	if err != nil {
		// Upstream failures are fatal for the run; no partial results.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil, "", false
	}

	return data, email, true
}
