package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Date is a timestamp that also accepts zone-less ISO 8601 input and plain
// calendar dates. It always marshals as RFC 3339 in UTC.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// ParseDate parses s with the first matching layout.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: invalid date %q (want RFC 3339, 2006-01-02T15:04:05 or 2006-01-02)", ErrValidation, s)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrValidation)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}
