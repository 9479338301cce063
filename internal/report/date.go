package report

import "time"

// CalendarDate is a plain year/month/day with no time-of-day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Period returns the month bucket the date falls in.
func (d CalendarDate) Period() PeriodKey {
	return PeriodKey{Year: d.Year, Month: d.Month}
}

// Time returns the date at midnight UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ISO formats the date as YYYY-MM-DD.
func (d CalendarDate) ISO() string {
	return d.Time().Format("2006-01-02")
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return other.Before(d)
}

// PeriodKey identifies one calendar-month bucket.
type PeriodKey struct {
	Year  int
	Month time.Month
}

// Prev returns the immediately preceding month.
func (p PeriodKey) Prev() PeriodKey {
	if p.Month == time.January {
		return PeriodKey{Year: p.Year - 1, Month: time.December}
	}
	return PeriodKey{Year: p.Year, Month: p.Month - 1}
}

// Days returns the number of days in the month.
func (p PeriodKey) Days() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShortLabel returns the abbreviated month name, e.g. "Mar".
func (p PeriodKey) ShortLabel() string {
	return p.Month.String()[:3]
}

// Label returns the full human label, e.g. "March 2024".
func (p PeriodKey) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

/// RawDate is the loosely-typed date shape delivered by the record store:
// a native timestamp, an ISO-ish string, a millisecond epoch, or absent
// (a nil RawDate). Resolve collapses every variant to a CalendarDate or
// reports that the value is unusable.
type RawDate interface {
	resolve() (CalendarDate, bool)
}

// NativeDate is a store-native timestamp.
type NativeDate time.Time

func (d NativeDate) resolve() (CalendarDate, bool) {
	t := time.Time(d)
	if t.IsZero() {
		return CalendarDate{}, false
	}
	return DateOf(t), true
}

// TextDate is a date carried as text. Accepted layouts cover what the
// store has been observed to hold: full RFC 3339 timestamps and bare
// YYYY-MM-DD dates.
type TextDate string

var textDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (d TextDate) resolve() (CalendarDate, bool) {
	s := string(d)
	if s == "" {
		return CalendarDate{}, false
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	return CalendarDate{}, false
}

// EpochDate is a Unix timestamp in milliseconds.
type EpochDate int64

func (d EpochDate) resolve() (CalendarDate, bool) {
	if d <= 0 {
		return CalendarDate{}, false
	}
	return DateOf(time.UnixMilli(int64(d)).UTC()), true
}

// Resolve normalizes a raw date. ok is false for nil or unparsable values;
// callers must exclude such records from period-bucketed aggregations.
func Resolve(d RawDate) (CalendarDate, bool) {
	if d == nil {
		return CalendarDate{}, false
	}
	return d.resolve()
}
