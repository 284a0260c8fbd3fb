package calendar

import (
	"testing"
	"time"
)

func TestParseSheetDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string // "" means parse failure expected
	}{
		{"5-Jan-2026", "2026-01-05"},
		{"05-Jan-2026", "2026-01-05"},
		{"2026-01-05", "2026-01-05"},
		{"5 Jan 2026", "2026-01-05"},
		// Manual DD-MMM-YYYY fallback, mixed case and full month name.
		{"17-FEB-2026", "2026-02-17"},
		{"17-February-2026", "2026-02-17"},
		{"", ""},
		{"someday", ""},
		{"32-Jan-2026", ""},
	}

	for _, c := range cases {
		got, ok := ParseSheetDate(c.in, time.UTC)
		if c.want == "" {
			if ok {
				t.Fatalf("ParseSheetDate(%q) should fail, got %v", c.in, got)
			}
			continue
		}
		if !ok || got.Format("2006-01-02") != c.want {
			t.Fatalf("ParseSheetDate(%q) = %v ok=%v, want %s", c.in, got, ok, c.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		h, m   int
		wantOK bool
	}{
		{"9:00 am", 9, 0, true},
		{"12:00 am", 0, 0, true},
		{"12:00 noon", 12, 0, true},
		{"1:15 pm", 13, 15, true},
		{"12:30 pm", 12, 30, true},
		{"14:00", 14, 0, true},
		{"late", 0, 0, false},
	}

	for _, c := range cases {
		h, m, ok := parseClock(c.in)
		if ok != c.wantOK || h != c.h || m != c.m {
			t.Fatalf("parseClock(%q) = %d:%02d ok=%v, want %d:%02d ok=%v", c.in, h, m, ok, c.h, c.m, c.wantOK)
		}
	}
}

func TestSlotTimes_DefaultEnd(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	start, end, ok := slotTimes(date, "9:00 am")
	if !ok {
		t.Fatalf("expected ok")
	}
	if start.Hour() != 9 || end.Sub(start) != 75*time.Minute {
		t.Fatalf("default end wrong: %v - %v", start, end)
	}

	if _, _, ok := slotTimes(date, "Morning Session"); ok {
		t.Fatalf("unparseable slot must not produce times")
	}
}
