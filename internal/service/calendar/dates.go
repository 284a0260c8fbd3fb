package calendar

import (
	"strconv"
	"strings"
	"time"
)

// sheetDateLayouts covers the date spellings seen in the timetable's
// date column. Tried in order before the manual fallback.
var sheetDateLayouts = []string{
	"2-Jan-2006",
	"02-Jan-2006",
	"2-Jan-06",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"2 January 2006",
}

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseSheetDate parses a sheet-native date string at midnight in loc.
// Generic layout parsing runs first; a strict DD-MMM-YYYY manual parser
// is the fallback for strings the layouts reject.
func ParseSheetDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range sheetDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return parseDayMonthYear(s, loc)
}

// parseDayMonthYear handles "DD-MMM-YYYY" by hand: split on "-", day and
// year numeric, month a three-letter abbreviation.
func parseDayMonthYear(s string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	monthKey := strings.ToLower(strings.TrimSpace(parts[1]))
	if len(monthKey) > 3 {
		monthKey = monthKey[:3]
	}
	month, ok := monthAbbrev[monthKey]
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || year < 1000 {
		return time.Time{}, false
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc), true
}

// parseClock reads one side of a slot range like "10:15 am" or
// "12:00 noon" into hour/minute.
func parseClock(s string) (hour, minute int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	meridiem := ""
	for _, suffix := range []string{"am", "pm", "noon"} {
		if strings.HasSuffix(s, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	switch meridiem {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "noon":
		hour = 12
	}

	return hour, minute, true
}

// slotTimes combines a parsed date with a slot label's start and end
// clocks. A slot with no parseable start yields ok=false; a missing or
// unparseable end defaults to start plus the standard session length.
func slotTimes(date time.Time, slot string) (start, end time.Time, ok bool) {
	const defaultSessionLength = 75 * time.Minute

	startPart, endPart, _ := strings.Cut(slot, "-")

	sh, sm, ok := parseClock(startPart)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start = time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, date.Location())

	if eh, em, endOK := parseClock(endPart); endOK {
		end = time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, date.Location())
	} else {
		end = start.Add(defaultSessionLength)
	}

	return start, end, true
}
