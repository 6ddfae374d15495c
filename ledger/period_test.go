package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod_Day(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	p, err := ResolvePeriod(0, PeriodDay, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 15))
	assert.Equal(t, p.End, date(2024, time.March, 16))

	p, err = ResolvePeriod(-1, PeriodDay, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 14))
	assert.Equal(t, p.End, date(2024, time.March, 15))
}

func TestResolvePeriod_WeekStartsOnFirstDay(t *testing.T) {
	// 2024-03-15 is a Friday.
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	p, err := ResolvePeriod(0, PeriodWeek, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 11))
	assert.Equal(t, p.End, date(2024, time.March, 18))

	// A Sunday-first week reaches back to the previous Sunday.
	p, err = ResolvePeriod(0, PeriodWeek, time.Sunday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 10))
	assert.Equal(t, p.End, date(2024, time.March, 17))

	// When now falls exactly on the first day, the week starts today.
	monday := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	p, err = ResolvePeriod(0, PeriodWeek, time.Monday, monday)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 11))
}

func TestResolvePeriod_WeekOffset(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	p, err := ResolvePeriod(-1, PeriodWeek, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.March, 4))
	assert.Equal(t, p.End, date(2024, time.March, 11))
}

func TestResolvePeriod_MonthRollover(t *testing.T) {
	// Resolving from Jan 31 must not drift on the day-of-month.
	now := time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)

	p, err := ResolvePeriod(0, PeriodMonth, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.January, 1))
	assert.Equal(t, p.End, date(2024, time.February, 1))

	p, err = ResolvePeriod(1, PeriodMonth, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.February, 1))
	assert.Equal(t, p.End, date(2024, time.March, 1))

	// Year carry in both directions.
	p, err = ResolvePeriod(-1, PeriodMonth, time.Monday, date(2024, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2023, time.December, 1))
	assert.Equal(t, p.End, date(2024, time.January, 1))

	p, err = ResolvePeriod(1, PeriodMonth, time.Monday, date(2023, time.December, 15))
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.January, 1))
}

func TestResolvePeriod_Year(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	p, err := ResolvePeriod(0, PeriodYear, time.Monday, now)
	assert.NoError(t, err)
	assert.Equal(t, p.Start, date(2024, time.January, 1))
	assert.Equal(t, p.End, date(2025, time.January, 1))

	// Dec 31 still falls before End.
	assert.True(t, p.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
}

func TestResolvePeriod_HalfOpen(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	for _, unit := range []PeriodUnit{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		for _, offset := range []int{-3, -1, 0, 1} {
			p, err := ResolvePeriod(offset, unit, time.Monday, now)
			assert.NoError(t, err)
			assert.True(t, p.Start.Before(p.End), "%s offset %d: start must precede end", unit, offset)
			assert.True(t, p.Contains(p.Start), "%s offset %d: start is inside", unit, offset)
			assert.False(t, p.Contains(p.End), "%s offset %d: end is outside", unit, offset)
		}
	}
}

func TestResolvePeriod_UnknownUnit(t *testing.T) {
	_, err := ResolvePeriod(0, PeriodUnit(42), time.Monday, time.Now())
	assert.Error(t, err)

	_, err = ParsePeriodUnit("fortnight")
	assert.Error(t, err)
}

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		offset int
		unit   PeriodUnit
		days   int
	}{
		{0, PeriodDay, 1},
		{0, PeriodWeek, 7},
		{0, PeriodMonth, 31},  // January
		{1, PeriodMonth, 29},  // February 2024, leap year
		{0, PeriodYear, 366},  // 2024
		{-1, PeriodYear, 365}, // 2023
	}

	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		p, err := ResolvePeriod(tt.offset, tt.unit, time.Monday, now)
		assert.NoError(t, err)
		assert.Equal(t, p.Days(), tt.days, "%s offset %d", tt.unit, tt.offset)
	}
}
