package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SlotTimeLayout is the clock layout used by the slot catalog, e.g. "10:00 AM".
const SlotTimeLayout = "3:04 PM"

var (
	// ErrInvalidSlotTime is returned when a string cannot be parsed as a catalog clock label
	ErrInvalidSlotTime = errors.New("types: invalid slot time, expected H:MM AM/PM")
)

// SlotTime is a clock-of-day label matching the slot catalog format ("10:00 AM").
// It carries no date and no timezone; two bookings occupy the same slot when
// their SlotTime values are equal.
type SlotTime string

// NewSlotTime builds a SlotTime from a time.Time, keeping only the clock part.
func NewSlotTime(t time.Time) SlotTime {
	return SlotTime(t.Format(SlotTimeLayout))
}

// NewSlotTimeFromString parses and normalizes a clock label.
// Accepts "10:00 AM", "10:00 am", " 10:00 AM " and returns the canonical form.
func NewSlotTimeFromString(s string) (SlotTime, error) {
	parsed, err := time.Parse(SlotTimeLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlotTime, s)
	}
	return SlotTime(parsed.Format(SlotTimeLayout)), nil
}

// String returns the canonical label.
func (t SlotTime) String() string {
	return string(t)
}

// IsZero returns true when no time is set.
func (t SlotTime) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed canonical clock label.
func (t SlotTime) Validate() error {
	parsed, err := time.Parse(SlotTimeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSlotTime, string(t))
	}
	if parsed.Format(SlotTimeLayout) != string(t) {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidSlotTime, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight, used for ordering slots within a day.
func (t SlotTime) Minutes() (int, error) {
	parsed, err := time.Parse(SlotTimeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotTime, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Before reports whether t is earlier in the day than other.
// Invalid values sort last.
func (t SlotTime) Before(other SlotTime) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return errA == nil && errB != nil
	}
	return a < b
}

// Value implements driver.Valuer so SlotTime can be written as text.
func (t SlotTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner so SlotTime can be read from a text column.
func (t *SlotTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = SlotTime(v)
		return nil
	case []byte:
		*t = SlotTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source %T", ErrInvalidSlotTime, src)
	}
}
