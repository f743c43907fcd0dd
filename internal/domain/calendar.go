package domain

import "time"

// DateOf strips the clock from t, keeping its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (negative if b is earlier)
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// Anniversary returns the birthday's month and day in the given year.
// 29 February falls on 28 February in non-leap years.
func (b Birthday) Anniversary(year int) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextOccurrence returns the first anniversary on or after the reference date
func (b Birthday) NextOccurrence(reference time.Time) time.Time {
	ref := DateOf(reference)
	next := b.Anniversary(ref.Year())
	if next.Before(ref) {
		next = b.Anniversary(ref.Year() + 1)
	}
	return next
}

// CongratulationDate moves a weekend date to the following Monday
func CongratulationDate(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
