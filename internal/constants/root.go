package constants

import "time"

// Tab represents the active dashboard tab
type Tab int

const (
	AppName            = "edusync"
	DefaultKeyringUser = "api-url"
	DefaultConfigPath  = "~/.config/edusync/config.yaml"
	DefaultAPIURL      = "http://localhost:8000"
	Version            = "v0.1.0"

	// EnvPrefix is prepended to every environment override (EDUSYNC_API_URL, ...)
	EnvPrefix = "EDUSYNC"

	// DefaultSubject is the subject label sent with every attendance mark
	DefaultSubject = "General"

	// RecentAttendanceLimit is how many records the dashboard lists as recent
	RecentAttendanceLimit = 10

	// UnknownStudentName is shown for records whose student is not cached
	UnknownStudentName = "Unknown"

	// DefaultRequestTimeout applies when no request_timeout is configured.
	// Zero leaves round trips unbounded, like a bare http.Client.
	DefaultRequestTimeout time.Duration = 0

	// RequestIDHeader carries a per-request correlation id
	RequestIDHeader = "X-Request-ID"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat renders a local wall-clock time for status messages
	TimeFormat = "3:04:05 PM"

	// DateTimeFormat renders a full local timestamp for record listings
	DateTimeFormat = "2006-01-02 3:04:05 PM"

	// Attendance types as reported by the server
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Tabs
const (
	TabAttendance Tab = iota
	TabTasks
)

// String returns the tab's wire/display name
func (t Tab) String() string {
	switch t {
	case TabAttendance:
		return "attendance"
	case TabTasks:
		return "tasks"
	default:
		return "unknown"
	}
}
