package dashboard

import (
	"slices"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/models"
)

// State is everything the dashboard renders. Only the Synchronizer writes
// it; renderers get copies from Synchronizer.State.
type State struct {
	Students   []models.Student
	Attendance []models.AttendanceRecord
	Stats      models.DashboardStats
	// Recommendation is replaced wholesale on each successful selection.
	// The selected student is derived from it so the pair can't drift.
	Recommendation *models.Recommendation

	ActiveTab constants.Tab
	Message   string // empty means no message is showing
	InFlight  bool   // a MarkAttendance write is outstanding
}

// SelectedStudentID returns the student whose recommendations are held
func (s State) SelectedStudentID() (int, bool) {
	if s.Recommendation == nil {
		return 0, false
	}
	return s.Recommendation.StudentID, true
}

// HasMessage reports whether a transient message is showing
func (s State) HasMessage() bool {
	return s.Message != ""
}

// AttendanceHistoryFor returns the cached records for a student in cache order
func (s State) AttendanceHistoryFor(studentID int) []models.AttendanceRecord {
	return AttendanceHistoryFor(s.Attendance, studentID)
}

// RecentAttendance returns up to n of the most recently cached records, newest first
func (s State) RecentAttendance(n int) []models.AttendanceRecord {
	n = max(n, 0)
	start := len(s.Attendance) - n
	if start < 0 {
		start = 0
	}
	recent := slices.Clone(s.Attendance[start:])
	slices.Reverse(recent)
	return recent
}

// StudentName resolves a student id against the cached student list
func (s State) StudentName(studentID int) string {
	for _, st := range s.Students {
		if st.ID == studentID {
			return st.Name
		}
	}
	return constants.UnknownStudentName
}

// AttendanceHistoryFor filters records by student id, preserving order.
// It is recomputed on every call; the result is never cached.
func AttendanceHistoryFor(records []models.AttendanceRecord, studentID int) []models.AttendanceRecord {
	history := make([]models.AttendanceRecord, 0)
	for _, r := range records {
		if r.StudentID == studentID {
			history = append(history, r)
		}
	}
	return history
}

func (s State) clone() State {
	out := s
	out.Students = slices.Clone(s.Students)
	out.Attendance = slices.Clone(s.Attendance)
	if s.Recommendation != nil {
		rec := *s.Recommendation
		rec.RecommendedTasks = slices.Clone(s.Recommendation.RecommendedTasks)
		out.Recommendation = &rec
	}
	return out
}
