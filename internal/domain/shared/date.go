package shared

import "time"

// DateLayout is the wire and display layout for calendar dates
const DateLayout = "2006-01-02"

// DateOf truncates t to a calendar date at midnight UTC.
// All persisted dates go through here so that comparisons in SQL see a
// single representation.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-mm-dd string into a UTC date
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDate renders a date as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
