// Package tracker orchestrates one fetch of the workbook: role
// discovery, catalog and grid parsing, and the roster range fetch.
package tracker

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/i-satyam007/IPM/internal/model"
	"github.com/i-satyam007/IPM/internal/parser"
	"github.com/i-satyam007/IPM/internal/sheets"
)

// ScheduleData is everything one pipeline run derives from the workbook.
// Lifetime is a single request; nothing here is persisted server-side.
type ScheduleData struct {
	Courses  map[string]model.Course `json:"courses"`
	Schedule []model.ClassSession    `json:"schedule"`
	// StudentRows holds the combined raw rows of the section rosters.
	StudentRows [][]string `json:"-"`
	// ElectiveRows maps elective course code -> that roster's raw rows.
	ElectiveRows map[string][][]string `json:"-"`
	// Debug is the ordered discovery trace for diagnostics.
	Debug []string `json:"debug,omitempty"`
}

// Service runs the extraction pipeline against one workbook source.
// Built per request around that request's token; no shared state.
type Service struct {
	source sheets.Source
}

// New creates a tracker service over a workbook source.
func New(source sheets.Source) *Service {
	return &Service{source: source}
}

// FetchFullSchedule runs discovery, catalog parsing, grid parsing and
// the batched roster fetch, sequentially. Any upstream fetch error is
// fatal for the whole run; no partial results come back.
func (s *Service) FetchFullSchedule(ctx context.Context) (*ScheduleData, error) {
	titles, err := s.source.SheetTitles(ctx)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	d := parser.NewDiscoverer()
	roles := d.DiscoverRoles(titles)
	if roles.Catalog == "" || roles.Timetable == "" {
		return nil, fmt.Errorf("could not locate catalog/timetable sheets")
	}

	catalogValues, err := s.source.Values(ctx, []string{roles.Catalog})
	if err != nil {
		return nil, err
	}
	if len(catalogValues) == 0 {
		return nil, fmt.Errorf("catalog sheet %q returned no data", roles.Catalog)
	}
	courses := parser.ParseCatalog(catalogValues[0])

	// Elective rosters are matched against catalog-derived names, so
	// this pass has to run after the catalog parse.
	d.MatchElectives(titles, courses, &roles)

	grid, err := s.source.Grid(ctx, roles.Timetable)
	if err != nil {
		return nil, err
	}
	schedule := parser.NewGridParser(courses).Parse(grid)

	data := &ScheduleData{
		Courses:      courses,
		Schedule:     schedule,
		ElectiveRows: make(map[string][][]string),
		Debug:        roles.Log,
	}

	if err := s.fetchRosters(ctx, roles, data); err != nil {
		return nil, err
	}

	for _, line := range roles.Log {
		log.Printf("discovery: %s", line)
	}

	return data, nil
}

// fetchRosters batch-reads the section and elective roster sheets the
// discovery found. Absent rosters are simply skipped.
func (s *Service) fetchRosters(ctx context.Context, roles parser.DiscoveryResult, data *ScheduleData) error {
	codes := make([]string, 0, len(roles.Electives))
	for code := range roles.Electives {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	titles := roles.RosterTitles(codes)
	if len(titles) == 0 {
		return nil
	}

	values, err := s.source.Values(ctx, titles)
	if err != nil {
		return err
	}
	if len(values) != len(titles) {
		return fmt.Errorf("roster fetch returned %d ranges, want %d", len(values), len(titles))
	}

	byTitle := make(map[string][][]string, len(titles))
	for i, t := range titles {
		byTitle[t] = values[i]
	}

	if roles.SectionA != "" {
		data.StudentRows = append(data.StudentRows, byTitle[roles.SectionA]...)
	}
	if roles.SectionB != "" {
		data.StudentRows = append(data.StudentRows, byTitle[roles.SectionB]...)
	}
	for _, code := range codes {
		data.ElectiveRows[code] = byTitle[roles.Electives[code]]
	}

	return nil
}

// ParseStudentProfile resolves one student's section and electives from
// the already-fetched roster rows.
func ParseStudentProfile(email string, data *ScheduleData) model.UserProfile {
	return parser.ResolveProfile(email, data.StudentRows, data.ElectiveRows)
}
