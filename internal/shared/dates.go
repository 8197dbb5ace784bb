package shared

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the canonical day-granularity date format for stored records.
const DayLayout = "2006-01-02"

// MonthLayout is the canonical month key format used in report breakdowns.
const MonthLayout = "2006-01"

var recordDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DayLayout,
}

// ParseRecordDate parses a stored record date. Records carry either a plain
// day or a full checkout timestamp. The second return is false when the value
// cannot be parsed; callers must exclude such records from any window rather
// than fail the aggregation.
func ParseRecordDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// WindowKind selects the reporting granularity.
type WindowKind string

const (
	WindowDaily   WindowKind = "daily"
	WindowMonthly WindowKind = "monthly"
	WindowYearly  WindowKind = "yearly"
)

// Window is a half-open calendar range at day, month, or year granularity.
// Ref is normalised to the start of the covered range in UTC.
type Window struct {
	Kind WindowKind
	Ref  time.Time
}

// DailyWindow covers the calendar day containing ref.
func DailyWindow(ref time.Time) Window {
	ref = ref.UTC()
	return Window{
		Kind: WindowDaily,
		Ref:  time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// MonthlyWindow covers the given calendar month.
func MonthlyWindow(year int, month time.Month) Window {
	return Window{
		Kind: WindowMonthly,
		Ref:  time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

// YearlyWindow covers the given calendar year.
func YearlyWindow(year int) Window {
	return Window{
		Kind: WindowYearly,
		Ref:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// End returns the exclusive end of the window.
func (w Window) End() time.Time {
	switch w.Kind {
	case WindowDaily:
		return w.Ref.AddDate(0, 0, 1)
	case WindowMonthly:
		return w.Ref.AddDate(0, 1, 0)
	default:
		return w.Ref.AddDate(1, 0, 0)
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.Ref) && t.Before(w.End())
}

// ContainsDate parses a stored record date and checks membership. Malformed
// dates match no window.
func (w Window) ContainsDate(value string) bool {
	t, ok := ParseRecordDate(value)
	if !ok {
		return false
	}
	return w.Contains(t)
}

// Key renders the canonical identifier of the window: 2006-01-02 for days,
// 2006-01 for months, 2006 for years.
func (w Window) Key() string {
	switch w.Kind {
	case WindowDaily:
		return w.Ref.Format(DayLayout)
	case WindowMonthly:
		return w.Ref.Format(MonthLayout)
	default:
		return fmt.Sprintf("%04d", w.Ref.Year())
	}
}

// SubWindows splits a monthly window into its days and a yearly window into
// its months. Daily windows have no sub-periods.
func (w Window) SubWindows() []Window {
	switch w.Kind {
	case WindowMonthly:
		days := make([]Window, 0, 31)
		for d := w.Ref; d.Before(w.End()); d = d.AddDate(0, 0, 1) {
			days = append(days, DailyWindow(d))
		}
		return days
	case WindowYearly:
		months := make([]Window, 0, 12)
		for m := time.January; m <= time.December; m++ {
			months = append(months, MonthlyWindow(w.Ref.Year(), m))
		}
		return months
	default:
		return nil
	}
}
