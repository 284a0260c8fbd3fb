package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/i-satyam007/IPM/internal/config"
	"github.com/i-satyam007/IPM/internal/sheets"
	"github.com/i-satyam007/IPM/internal/store"
)

// fakeSource serves a fixed workbook without the Sheets API.
type fakeSource struct {
	titles []string
	values map[string][][]string
	grids  map[string][][]sheets.Cell
}

func (f *fakeSource) SheetTitles(_ context.Context) ([]string, error) { return f.titles, nil }

func (f *fakeSource) Values(_ context.Context, titles []string) ([][][]string, error) {
	out := make([][][]string, len(titles))
	for i, t := range titles {
		rows, ok := f.values[t]
		if !ok {
			return nil, fmt.Errorf("no such sheet %q", t)
		}
		out[i] = rows
	}
	return out, nil
}

func (f *fakeSource) Grid(_ context.Context, title string) ([][]sheets.Cell, error) {
	g, ok := f.grids[title]
	if !ok {
		return nil, fmt.Errorf("no such sheet %q", title)
	}
	return g, nil
}

func cellRow(texts ...string) []sheets.Cell {
	cells := make([]sheets.Cell, len(texts))
	for i, t := range texts {
		cells[i] = sheets.Cell{Value: t}
	}
	return cells
}

func rosterRow(email, section string) []string {
	row := make([]string, 10)
	row[3] = email
	row[9] = section
	return row
}

func testRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.DefaultConfig()
	cfg.Google.SpreadsheetID = "test-spreadsheet"

	h := NewHandler(st, cfg)
	h.newSource = func(_ *gin.Context, _ string) (sheets.Source, error) {
		return &fakeSource{
			titles: []string{"Course Details", "Time Table", "Section A"},
			values: map[string][][]string{
				"Course Details": {
					{"S.No", "Course Name", "Credits", "Code", "Type"},
					{"1", "Design Thinking", "3", "DT", "Core"},
				},
				"Section A": {
					rosterRow("alice@ipm.ac.in", "A"),
				},
			},
			grids: map[string][][]sheets.Cell{
				"Time Table": {
					cellRow("Term 2"),
					cellRow("Date", "Day", "Section", "Slot 1\n9:00 am - 10:15 am"),
					cellRow("5-Jan-2026", "Mon", "A", "DT 1"),
				},
			},
		}, nil
	}

	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r, st
}

func TestGetSchedule_RequiresBearerToken(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?email=alice@ipm.ac.in", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetSchedule_ReturnsFilteredSchedule(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?email=alice@ipm.ac.in&debug=1", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}

	var resp ScheduleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Profile.Section != "A" {
		t.Fatalf("profile: %+v", resp.Profile)
	}
	if len(resp.Schedule) != 1 || resp.Schedule[0].CourseCode != "DT" {
		t.Fatalf("schedule: %+v", resp.Schedule)
	}
	if len(resp.Debug) == 0 {
		t.Fatalf("expected debug trace with debug=1")
	}
}

func TestGetSchedule_MissingEmail(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
}

func TestAttendance_PutThenStats(t *testing.T) {
	r, _ := testRouter(t)

	body, _ := json.Marshal(MarkRequest{
		Email:      "alice@ipm.ac.in",
		SessionKey: "DT-1",
		Status:     "Present",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put mark: %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/stats?email=alice@ipm.ac.in", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d body=%s", w.Code, w.Body.String())
	}

	var resp StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	dt := resp.Stats["DT"]
	if dt.Total != 1 || dt.Attended != 1 {
		t.Fatalf("unexpected stat: %+v", dt)
	}
}

func TestPutAttendance_RejectsBadStatus(t *testing.T) {
	r, _ := testRouter(t)

	body, _ := json.Marshal(MarkRequest{Email: "a@b.c", SessionKey: "DT-1", Status: "Maybe"})
	req := httptest.NewRequest(http.MethodPut, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
}

func TestStatus(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Configured {
		t.Fatalf("expected configured=true: %+v", resp)
	}
}
