package store

import "time"

// DateFormat is the user-facing date layout.
const DateFormat = "02/01/2006"

// dateFormatShort accepts two-digit years on input.
const dateFormatShort = "02/01/06"

// ParseUserDate parses a user-supplied date in dd/mm/yy or dd/mm/yyyy form.
func ParseUserDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateFormatShort, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DayNumber returns the number of days since the Unix epoch for the calendar
// date of t. Time-of-day and zone offsets within the day are discarded, so
// two times on the same calendar date map to the same day number.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}

// DayFromNumber is the inverse of DayNumber.
func DayFromNumber(n int) time.Time {
	return time.Unix(int64(n)*86400, 0).UTC()
}

// DaysUntil returns the whole days from now's calendar date until due's.
// Negative when due is in the past.
func DaysUntil(due, now time.Time) int {
	return DayNumber(due) - DayNumber(now)
}
