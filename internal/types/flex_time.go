package types

import (
	"encoding/json"
	"time"
)

// timeLayouts are the accepted input formats, tried in order. Forms post
// datetime-local values without a zone; date-only values come from date
// pickers.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FlexTime is an optional timestamp tolerant of the formats clients post.
// A missing, empty, or unparseable value decodes to the zero FlexTime,
// which means "undecided" everywhere downstream. Bad dates are data to
// tolerate, not errors to raise.
type FlexTime struct {
	t *time.Time
}

// NewFlexTime wraps a concrete time.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t: &t}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	f.t = nil
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string at all; treat as undecided.
		return nil
	}
	if s == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			f.t = &t
			return nil
		}
	}

	// Unparseable values are treated as absent.
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.t.Format(time.RFC3339))
}

// Ptr returns the wrapped time, nil when undecided.
func (f FlexTime) Ptr() *time.Time {
	return f.t
}

// IsZero reports whether the value is undecided.
func (f FlexTime) IsZero() bool {
	return f.t == nil
}
