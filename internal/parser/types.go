package parser

// SheetRole identifies what part a sheet plays in the workbook.
type SheetRole string

const (
	RoleCatalog   SheetRole = "catalog"
	RoleTimetable SheetRole = "timetable"
	RoleSectionA  SheetRole = "section_a"
	RoleSectionB  SheetRole = "section_b"
	RoleElective  SheetRole = "elective"
	RoleUnknown   SheetRole = "unknown"
)

// DiscoveryResult is the outcome of sheet role discovery over one
// workbook's sheet titles.
type DiscoveryResult struct {
	Catalog   string `json:"catalog"`
	Timetable string `json:"timetable"`
	// SectionA / SectionB are roster sheet titles; empty when not found.
	SectionA string `json:"sectionA,omitempty"`
	SectionB string `json:"sectionB,omitempty"`
	// Electives maps elective course code -> matched roster sheet title.
	Electives map[string]string `json:"electives"`
	// Log is the ordered human-readable discovery trace.
	Log []string `json:"log"`
}

// RosterTitles returns every roster sheet title the discovery found, in
// a stable order: section A, section B, then electives by course code.
func (d DiscoveryResult) RosterTitles(codes []string) []string {
	var titles []string
	if d.SectionA != "" {
		titles = append(titles, d.SectionA)
	}
	if d.SectionB != "" {
		titles = append(titles, d.SectionB)
	}
	for _, code := range codes {
		if t, ok := d.Electives[code]; ok {
			titles = append(titles, t)
		}
	}
	return titles
}
