package parser

import (
	"strconv"
	"strings"

	"github.com/i-satyam007/IPM/internal/model"
)

// Catalog sheet column layout. Row 0 is the header and is discarded.
const (
	catalogColName    = 1
	catalogColCredits = 2
	catalogColCode    = 3
	catalogColType    = 4
)

// ParseCatalog turns the catalog sheet's raw rows into a course map
// keyed by code. Rows with a blank code column are skipped; non-numeric
// credits default to 0; free-text types that match nothing become
// Unknown. Duplicated codes are last-write-wins.
func ParseCatalog(rows [][]string) map[string]model.Course {
	courses := make(map[string]model.Course)

	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		code := columnValue(row, catalogColCode)
		if code == "" {
			continue
		}

		rawType := NormalizeWhitespace(columnValue(row, catalogColType))
		courses[code] = model.Course{
			Code:    code,
			Name:    columnValue(row, catalogColName),
			Credits: parseCredits(columnValue(row, catalogColCredits)),
			Type:    courseType(rawType),
			RawType: rawType,
		}
	}

	return courses
}

// parseCredits converts the credits column, defaulting to 0 on
// non-numeric input rather than raising.
func parseCredits(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// courseType maps normalized free text onto the course type enum.
func courseType(rawType string) model.CourseType {
	switch {
	case strings.EqualFold(rawType, "core"):
		return model.CourseTypeCore
	case strings.EqualFold(rawType, "elective"):
		return model.CourseTypeElective
	default:
		return model.CourseTypeUnknown
	}
}
