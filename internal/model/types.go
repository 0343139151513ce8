package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date stored as a DATE column and serialized as
// YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// IDList accepts the legacy mixed-arity service selection: a single numeric
// id, a one-element array, or a multi-element array all decode to a slice.
type IDList []int64

func (l *IDList) UnmarshalJSON(b []byte) error {
	var single int64
	if err := json.Unmarshal(b, &single); err == nil {
		*l = IDList{single}
		return nil
	}

	var many []int64
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("serviceId must be a number or an array of numbers")
	}
	*l = IDList(many)
	return nil
}
