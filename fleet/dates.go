package fleet

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for every trainset date field
const DateLayout = "2006-01-02"

// AddDays adds days calendar days to a YYYY-MM-DD date and returns the
// result in the same format.
func AddDays(date string, days int) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.AddDate(0, 0, days).Format(DateLayout), nil
}

// normalizeDate accepts a YYYY-MM-DD date or an RFC 3339 timestamp and
// returns the calendar date part.
func normalizeDate(value string) (string, error) {
	if d, err := time.Parse(DateLayout, value); err == nil {
		return d.Format(DateLayout), nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %s", value)
	}
	return ts.UTC().Format(DateLayout), nil
}
