package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/i-satyam007/IPM/internal/config"
	"github.com/i-satyam007/IPM/internal/service/excel"
	"github.com/i-satyam007/IPM/internal/service/schedule"
	"github.com/i-satyam007/IPM/internal/service/tracker"
)

const exportTTL = 10 * time.Minute

type exportDownload struct {
	filePath  string
	expiresAt time.Time
}

// exportDownloadStore hands out short-lived download tokens so the
// export file itself never travels through the authed POST response.
type exportDownloadStore struct {
	mu    sync.Mutex
	items map[string]exportDownload
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{items: make(map[string]exportDownload)}
}

func (s *exportDownloadStore) put(filePath string, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token := uuid.NewString()
	s.items[token] = exportDownload{filePath: filePath, expiresAt: time.Now().Add(ttl)}
	return token
}

func (s *exportDownloadStore) get(token string) (exportDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return exportDownload{}, false
	}
	return v, true
}

func (s *exportDownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

// Export renders the user's schedule workbook and returns a download
// token.
// POST /api/export?email=...
func (h *Handler) Export(c *gin.Context) {
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
	stats := schedule.CalculateStats(filtered, marks)

	f, err := excel.NewExporter().Export(filtered, data.Courses, stats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	exportDir := os.TempDir()
	if dataDir, err := config.EnsureDataDir(h.cfg); err == nil {
		exportDir = filepath.Join(dataDir, "exports")
	}
	filePath := filepath.Join(exportDir,
		fmt.Sprintf("schedule_%d.xlsx", time.Now().UnixNano()))

	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export file"})
		return
	}

	token := h.downloads.put(filePath, exportTTL)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DownloadExport streams a previously exported workbook.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown or expired download token"})
		return
	}

	c.FileAttachment(item.filePath, "schedule.xlsx")
}
