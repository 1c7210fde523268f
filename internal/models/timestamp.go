package models

import (
	"fmt"
	"strings"
	"time"
)

// serverLayouts are tried in order. Zone-less values are recorded in UTC
// by the API.
var serverLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a server-issued instant. The zero value means "absent".
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an ISO-8601 timestamp with or without a zone suffix.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range serverLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// LocalFormat renders the instant in the local zone, or "" when absent.
func (ts Timestamp) LocalFormat(layout string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(layout)
}
