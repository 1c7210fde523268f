package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "zone-less microseconds are UTC",
			input: "2025-09-20T10:11:12.123456",
			want:  time.Date(2025, 9, 20, 10, 11, 12, 123456000, time.UTC),
		},
		{
			name:  "zone-less seconds",
			input: "2025-09-20T10:11:12",
			want:  time.Date(2025, 9, 20, 10, 11, 12, 0, time.UTC),
		},
		{
			name:  "explicit offset",
			input: "2025-09-20T15:41:12+05:30",
			want:  time.Date(2025, 9, 20, 10, 11, 12, 0, time.UTC),
		},
		{
			name:  "space separator",
			input: "2025-09-20 10:11:12",
			want:  time.Date(2025, 9, 20, 10, 11, 12, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var rec AttendanceRecord
	if err := json.Unmarshal([]byte(`{"id":1,"student_id":2,"timestamp":null}`), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !rec.Timestamp.IsZero() {
		t.Errorf("expected zero timestamp, got %v", rec.Timestamp.Time)
	}
	if rec.Timestamp.LocalFormat(time.Kitchen) != "" {
		t.Error("LocalFormat of an absent timestamp should be empty")
	}
}

func TestRecommendationMissingTasks(t *testing.T) {
	var rec Recommendation
	if err := json.Unmarshal([]byte(`{"student_id":5,"student_name":"Ravi","career_interest":null}`), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(rec.RecommendedTasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(rec.RecommendedTasks))
	}
	if rec.Interest() != "" {
		t.Errorf("Interest() = %q, want empty", rec.Interest())
	}
}
