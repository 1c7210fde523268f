package models

// AttendanceRecord references its student by id only
type AttendanceRecord struct {
	ID             int       `json:"id"`
	StudentID      int       `json:"student_id"`
	Subject        string    `json:"subject"`
	Timestamp      Timestamp `json:"timestamp"`
	AttendanceType string    `json:"attendance_type"`
	MarkedBy       string    `json:"marked_by"`
}

// DashboardStats is an opaque server-side aggregate
type DashboardStats struct {
	TotalStudents        int     `json:"total_students"`
	AttendanceToday      int     `json:"attendance_today"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	ActiveTasks          int     `json:"active_tasks"`
}
