package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/i-satyam007/IPM/internal/model"
)

// Discoverer resolves which sheet plays which role in a workbook.
// Discovery is a pure function over the provided metadata: it never
// touches the network and records every decision in the result's log.
type Discoverer struct{}

// NewDiscoverer creates a discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// roleStrategy is one named way of picking a sheet title for a role.
// Strategies are applied in priority order; the first success wins.
type roleStrategy struct {
	Name  string
	Match func(titles []string) (string, bool)
}

// keywordStrategy matches the first title containing the keyword,
// case-insensitively.
func keywordStrategy(keyword string) roleStrategy {
	return roleStrategy{
		Name: fmt.Sprintf("keyword %q", keyword),
		Match: func(titles []string) (string, bool) {
			for _, t := range titles {
				if containsFold(t, keyword) {
					return t, true
				}
			}
			return "", false
		},
	}
}

// positionalStrategy falls back to the sheet at a fixed workbook index.
// Best-effort default for workbooks whose authors renamed the sheets.
func positionalStrategy(idx int) roleStrategy {
	return roleStrategy{
		Name: fmt.Sprintf("position %d", idx),
		Match: func(titles []string) (string, bool) {
			if idx < len(titles) {
				return titles[idx], true
			}
			return "", false
		},
	}
}

// DiscoverRoles identifies the catalog, timetable and section roster
// sheets from the workbook's ordered sheet titles. Elective rosters need
// the parsed catalog and are matched separately by MatchElectives.
func (d *Discoverer) DiscoverRoles(titles []string) DiscoveryResult {
	res := DiscoveryResult{Electives: make(map[string]string)}

	res.Catalog = d.resolveRole(&res, RoleCatalog, titles,
		keywordStrategy("details"),
		positionalStrategy(0),
	)
	res.Timetable = d.resolveRole(&res, RoleTimetable, titles,
		keywordStrategy("time table"),
		positionalStrategy(1),
	)
	// Section rosters are optional; no positional fallback.
	res.SectionA = d.resolveRole(&res, RoleSectionA, titles,
		keywordStrategy("section a"),
	)
	res.SectionB = d.resolveRole(&res, RoleSectionB, titles,
		keywordStrategy("section b"),
	)

	return res
}

// resolveRole applies the strategies in order and logs the outcome.
func (d *Discoverer) resolveRole(res *DiscoveryResult, role SheetRole, titles []string, strategies ...roleStrategy) string {
	for _, s := range strategies {
		if title, ok := s.Match(titles); ok {
			res.Log = append(res.Log, fmt.Sprintf("%s: matched %q via %s", role, title, s.Name))
			return title
		}
	}
	res.Log = append(res.Log, fmt.Sprintf("%s: no sheet matched", role))
	return ""
}

// MatchElectives maps each elective-like course to its roster sheet.
// Three strategies per course, first match wins:
//  1. a sheet title contains the full course name
//  2. a sheet title contains the course code and the word "list"
//  3. a sheet title contains the code's pre-hyphen prefix and "list"
//
// A course with no match simply has no discoverable roster this fetch;
// that is logged, never fatal.
func (d *Discoverer) MatchElectives(titles []string, courses map[string]model.Course, res *DiscoveryResult) {
	if res.Electives == nil {
		res.Electives = make(map[string]string)
	}

	codes := make([]string, 0, len(courses))
	for code := range courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		course := courses[code]
		if !course.IsElectiveLike() {
			continue
		}

		title, how, ok := matchElectiveSheet(titles, course)
		if !ok {
			res.Log = append(res.Log, fmt.Sprintf("elective %s: no roster sheet matched", code))
			continue
		}
		res.Electives[code] = title
		res.Log = append(res.Log, fmt.Sprintf("elective %s: matched %q via %s", code, title, how))
	}
}

// matchElectiveSheet runs the three ordered fallback strategies for one
// elective course.
func matchElectiveSheet(titles []string, course model.Course) (title, how string, ok bool) {
	if course.Name != "" {
		for _, t := range titles {
			if containsFold(t, course.Name) {
				return t, "course name", true
			}
		}
	}

	for _, t := range titles {
		if containsFold(t, course.Code) && containsFold(t, "list") {
			return t, "course code + list", true
		}
	}

	if prefix, _, found := strings.Cut(course.Code, "-"); found && len(prefix) > 1 {
		for _, t := range titles {
			if containsFold(t, prefix) && containsFold(t, "list") {
				return t, "code prefix + list", true
			}
		}
	}

	return "", "", false
}
