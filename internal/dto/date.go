package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-day form sent by date pickers.
const DateLayout = "2006-01-02"

// Date is a request timestamp that accepts either a calendar day
// ("2023-09-30", read as UTC midnight) or a full RFC3339 value.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	d.Time = t
	return nil
}

// TimeOr returns the wrapped time, or def when d is nil.
func (d *Date) TimeOr(def time.Time) time.Time {
	if d == nil {
		return def
	}
	return d.Time
}
