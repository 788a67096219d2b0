package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates (ISO-8601, no time part).
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It serializes to JSON as
// an ISO-8601 date string ("2025-04-01"), matching how due dates travel on
// the wire, while timestamps remain full RFC 3339 datetimes.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

// ParseDate parses an ISO-8601 calendar date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidFormat, s)
	}
	return DateOf(t), nil
}

// String returns the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
