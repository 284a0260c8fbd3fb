package parser

import (
	"strings"

	"github.com/i-satyam007/IPM/internal/model"
	"github.com/i-satyam007/IPM/internal/sheets"
)

// Timetable grid layout assumptions. Row 0 is a title/merge artifact,
// row 1 holds the slot labels, data starts at row 2.
const (
	gridHeaderRow    = 1
	gridFirstDataRow = 2
	gridColDate      = 0
	gridColSection   = 2
	gridFirstSlotCol = 3
)

// GridParser turns the timetable sheet's cell grid into a flat session
// list, validating course codes against the already-parsed catalog.
type GridParser struct {
	courses map[string]model.Course
}

// NewGridParser creates a grid parser bound to one course catalog.
func NewGridParser(courses map[string]model.Course) *GridParser {
	return &GridParser{courses: courses}
}

// Parse walks the grid and emits sessions in sheet order.
//
// Merged date cells arrive as empty cells; the last seen date carries
// forward. Rows before any date, and rows with nothing populated beyond
// the date column, are skipped. Struck-through cells produce sessions
// flagged cancelled rather than being dropped.
func (p *GridParser) Parse(grid [][]sheets.Cell) []model.ClassSession {
	if len(grid) <= gridFirstDataRow {
		return nil
	}

	slots := p.slotLabels(grid[gridHeaderRow])

	var (
		sessions    []model.ClassSession
		currentDate string
	)

	for rowIdx := gridFirstDataRow; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]

		if date := cellText(row, gridColDate); date != "" {
			currentDate = date
		}
		if currentDate == "" {
			continue // no date seen yet, row is unanchorable
		}
		if rowEmptyBeyondDate(row) {
			continue // spacer row
		}

		rowSection := sectionLetter(cellText(row, gridColSection))

		for colIdx := gridFirstSlotCol; colIdx < len(row); colIdx++ {
			text := strings.TrimSpace(row[colIdx].Text())
			if text == "" {
				continue
			}

			session, ok := p.parseCell(text, rowSection)
			if !ok {
				continue
			}

			session.Date = currentDate
			session.TimeSlot = slotLabel(slots, colIdx)
			session.IsCancelled = row[colIdx].StruckThrough
			sessions = append(sessions, session)
		}
	}

	return sessions
}

// slotLabels cleans the header row's slot labels from the first slot
// column onward, keyed by absolute column index.
func (p *GridParser) slotLabels(header []sheets.Cell) map[int]string {
	labels := make(map[int]string)
	for colIdx := gridFirstSlotCol; colIdx < len(header); colIdx++ {
		raw := header[colIdx].Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		labels[colIdx] = CleanSlotLabel(raw)
	}
	return labels
}

// parseCell tokenizes one grid cell into a session.
//
// Tokens equal to "lunch"/"break" are dropped outright. The first
// remaining token must resolve to a catalog code, with one retry after
// stripping non-alphanumerics; otherwise the whole cell is discarded
// (stray words captured by the grid). The second token is the session
// number, kept opaque. A third "A"/"B" token overrides the row section.
func (p *GridParser) parseCell(text, rowSection string) (model.ClassSession, bool) {
	var tokens []string
	for _, tok := range strings.Fields(text) {
		if strings.EqualFold(tok, "lunch") || strings.EqualFold(tok, "break") {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return model.ClassSession{}, false
	}

	code, ok := p.resolveCode(tokens[0])
	if !ok {
		return model.ClassSession{}, false
	}

	session := model.ClassSession{
		CourseCode: code,
		Section:    rowSection,
		RawText:    text,
	}
	if len(tokens) > 1 {
		session.SessionNumber = tokens[1]
	}
	if len(tokens) > 2 {
		if s := sectionLetter(tokens[2]); s != "" {
			session.Section = s
		}
	}

	return session, true
}

// resolveCode validates a course code candidate against the catalog,
// retrying once with non-alphanumerics stripped.
func (p *GridParser) resolveCode(candidate string) (string, bool) {
	if _, ok := p.courses[candidate]; ok {
		return candidate, true
	}
	stripped := StripNonAlnum(candidate)
	if _, ok := p.courses[stripped]; ok {
		return stripped, true
	}
	return "", false
}

// rowEmptyBeyondDate reports whether nothing after the date column is
// populated.
func rowEmptyBeyondDate(row []sheets.Cell) bool {
	for colIdx := gridColDate + 1; colIdx < len(row); colIdx++ {
		if !row[colIdx].Empty() {
			return false
		}
	}
	return true
}

// cellText returns the trimmed text of row[idx], or "" when the row is
// shorter.
func cellText(row []sheets.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx].Text())
}

// slotLabel looks up the cleaned label for a column, falling back to ""
// when the header row was shorter than the data row.
func slotLabel(labels map[int]string, colIdx int) string {
	return labels[colIdx]
}
