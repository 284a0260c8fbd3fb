// Package excel renders a student's filtered schedule and attendance
// stats as an .xlsx workbook for download.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/i-satyam007/IPM/internal/model"
)

// Exporter writes schedule workbooks.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds a workbook with the user's session list and a per-course
// attendance summary sheet.
func (e *Exporter) Export(sessions []model.ClassSession, courses map[string]model.Course, stats map[string]model.CourseStat) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Schedule"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Date", "Time Slot", "Course", "Session", "Section", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	strikeStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Strike: true},
	})

	for i, s := range sessions {
		rowNum := i + 2

		courseLabel := s.CourseCode
		if c, ok := courses[s.CourseCode]; ok && c.Name != "" {
			courseLabel = fmt.Sprintf("%s: %s", s.CourseCode, c.Name)
		}
		section := s.Section
		if section == "" {
			section = "Common"
		}
		status := ""
		if s.IsCancelled {
			status = "Cancelled"
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), s.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), s.TimeSlot)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), courseLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), s.SessionNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), section)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), status)

		// Mirror the sheet's own convention: cancelled rows struck out.
		if s.IsCancelled {
			f.SetRowStyle(sheetName, rowNum, rowNum, strikeStyle)
		}
	}

	if len(stats) > 0 {
		statSheet := "Attendance"
		f.NewSheet(statSheet)

		statHeaders := [][]interface{}{
			{"Course", "Total", "Attended", "Leaves", "Allowed Leaves", "Attendance %"},
		}

		codes := make([]string, 0, len(stats))
		for code := range stats {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			st := stats[code]
			statHeaders = append(statHeaders, []interface{}{
				code, st.Total, st.Attended, st.Leaves, st.AllowedLeaves,
				fmt.Sprintf("%d%%", st.Percentage()),
			})
		}

		for i, rowVals := range statHeaders {
			for j, val := range rowVals {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
				f.SetCellValue(statSheet, cell, val)
			}
		}
		f.SetRowStyle(statSheet, 1, 1, headerStyle)
	}

	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 35)
	f.SetColWidth(sheetName, "D", "F", 12)

	return f, nil
}
