package dashboard

import "github.com/julianstephens/edusync/internal/models"

// Result messages. Each is produced by a command issued from the
// Synchronizer and applied back to it by Update.

type StudentsLoadedMsg struct {
	Students []models.Student
	Err      error
}

type StatsLoadedMsg struct {
	Stats models.DashboardStats
	Err   error
}

type AttendanceLoadedMsg struct {
	Records []models.AttendanceRecord
	Err     error
}

type AttendanceMarkedMsg struct {
	StudentName string
	Record      models.AttendanceRecord
	Err         error
}

type RecommendationLoadedMsg struct {
	StudentID      int
	Recommendation models.Recommendation
	Err            error
}

type TaskAssignedMsg struct {
	StudentID  int
	TaskID     int
	Assignment models.Assignment
	Err        error
}
