package kernel

import "time"

// TruncateToMillis drops sub-millisecond precision (and the monotonic reading)
// so that timestamps compare equal after a round trip through storage.
func TruncateToMillis(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// DateOf returns the calendar date of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FirstDayOfMonth returns the first day of t's month as a date.
func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the last day of t's month as a date.
func LastDayOfMonth(t time.Time) time.Time {
	return FirstDayOfMonth(t).AddDate(0, 1, -1)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// MonthsBetween counts the complete months from from to to, the way a
// calendar period is measured: 2020-01-15 to 2020-02-14 is zero months,
// 2020-01-15 to 2020-02-15 is one. It is negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -MonthsBetween(to, from)
	}
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	months := (ty-fy)*12 + int(tm-fm)
	if td < fd {
		months--
	}
	return months
}

// YearsBetween counts the complete years from from to to.
func YearsBetween(from, to time.Time) int {
	return MonthsBetween(from, to) / 12
}
