package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// Timestamp is a time stored as an ISO string. Date-only values are accepted
// on read so that hand-edited or older snapshots and form inputs still load.
type Timestamp struct {
	time.Time
	dateOnly bool
}

// IsDateOnly reports whether the value was read from a bare YYYY-MM-DD.
func (t Timestamp) IsDateOnly() bool {
	return t.dateOnly
}

// InLocation returns the instant. A date-only value is read as midnight of
// that calendar day in loc rather than in UTC.
func (t Timestamp) InLocation(loc *time.Location) time.Time {
	if !t.dateOnly || loc == nil || t.IsZero() {
		return t.Time
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// MarshalJSON writes RFC 3339 with nanoseconds, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts RFC 3339, YYYY-MM-DD, or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.dateOnly = false
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(dateOnly, s)
	if err != nil {
		return fmt.Errorf("unrecognised timestamp %q", s)
	}
	t.Time, t.dateOnly = parsed, true
	return nil
}

// FlexID is an identifier that may have been written as a JSON number
// (millisecond timestamps) or a string.
type FlexID string

// UnmarshalJSON accepts a string or a number.
func (id *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}
