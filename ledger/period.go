package ledger

import (
	"fmt"
	"time"
)

// PeriodUnit is the granularity of a reporting period.
type PeriodUnit int

const (
	PeriodDay PeriodUnit = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
)

// String returns the string representation of the period unit.
func (u PeriodUnit) String() string {
	switch u {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "unknown"
	}
}

// ParsePeriodUnit parses a period unit from its string form.
func ParsePeriodUnit(s string) (PeriodUnit, error) {
	switch s {
	case "day":
		return PeriodDay, nil
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	case "year":
		return PeriodYear, nil
	default:
		return 0, &UnknownPeriodUnitError{Unit: s}
	}
}

// Period is a half-open date range [Start, End). A record dated exactly
// at Start is inside the period; one dated exactly at End is not.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Days returns the number of calendar days covered by the period.
// Counted day by day so daylight-saving transitions don't skew it.
func (p Period) Days() int {
	days := 0
	for d := p.Start; d.Before(p.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// String returns a human-readable representation of the period.
func (p Period) String() string {
	return fmt.Sprintf("[%s, %s)", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// ResolvePeriod converts a signed offset and a granularity into an
// absolute half-open range, relative to now. Offset 0 is the current
// period, negative offsets reach into the past. Positive offsets are
// resolved without error; it is up to callers to disallow them.
//
// firstDay only affects week periods: the week starts on the most
// recent firstDay at or before the shifted instant.
func ResolvePeriod(offset int, unit PeriodUnit, firstDay time.Weekday, now time.Time) (Period, error) {
	switch unit {
	case PeriodDay:
		start := midnight(now.AddDate(0, 0, offset))
		return Period{Start: start, End: start.AddDate(0, 0, 1)}, nil

	case PeriodWeek:
		shifted := midnight(now.AddDate(0, 0, 7*offset))
		back := (int(shifted.Weekday()) - int(firstDay) + 7) % 7
		start := shifted.AddDate(0, 0, -back)
		return Period{Start: start, End: start.AddDate(0, 0, 7)}, nil

	case PeriodMonth:
		// time.Date normalizes out-of-range months, carrying the year.
		// Never fixed-day arithmetic: months are 28-31 days long.
		start := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
		return Period{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case PeriodYear:
		start := time.Date(now.Year()+offset, time.January, 1, 0, 0, 0, 0, now.Location())
		return Period{Start: start, End: start.AddDate(1, 0, 0)}, nil

	default:
		return Period{}, &UnknownPeriodUnitError{Unit: unit.String()}
	}
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
