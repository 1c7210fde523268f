// Package dashboard keeps the client-side view of the EduSync API
// consistent with user actions.
//
// Operations mutate state synchronously and return a tea.Cmd that performs
// the network round trip. The round trip's result comes back as a message
// which Update applies. State is only ever touched from the goroutine that
// calls the operations and Update (the bubbletea update loop, or Settle),
// so no locking is needed.
package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/logger"
	"github.com/julianstephens/edusync/internal/models"
)

// User-visible messages
const (
	MsgStudentsLoadFailed = "Error loading students"
	MsgMarkFailed         = "❌ Error marking attendance"
	MsgAssignFailed       = "❌ Error assigning task"
)

// API is the subset of the remote API the dashboard consumes
type API interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	MarkAttendance(ctx context.Context, studentID int, subject string) (models.AttendanceRecord, error)
	RecommendedTasks(ctx context.Context, studentID int) (models.Recommendation, error)
	AssignTask(ctx context.Context, studentID, taskID int) (models.Assignment, error)
}

// Synchronizer owns the dashboard State
type Synchronizer struct {
	api   API
	ctx   context.Context
	state State
}

// New creates a Synchronizer. ctx is used for every request it issues.
func New(ctx context.Context, api API) *Synchronizer {
	return &Synchronizer{
		api: api,
		ctx: ctx,
		state: State{
			ActiveTab: constants.TabAttendance,
		},
	}
}

// State returns a copy of the current state for rendering
func (s *Synchronizer) State() State {
	return s.state.clone()
}

// AttendanceHistoryFor filters the current attendance cache for one student
func (s *Synchronizer) AttendanceHistoryFor(studentID int) []models.AttendanceRecord {
	return s.state.AttendanceHistoryFor(studentID)
}

// LoadInitialState fetches students, stats and attendance independently.
// A failure in one leaves the others unaffected.
func (s *Synchronizer) LoadInitialState() tea.Cmd {
	return tea.Batch(s.fetchStudents(), s.fetchStats(), s.fetchAttendance())
}

// MarkAttendance records attendance for a student under the default
// subject. It is a no-op while a previous mark is still outstanding.
//
// Touches: InFlight, Message; then Stats and Attendance via re-fetch.
func (s *Synchronizer) MarkAttendance(studentID int, studentName string) tea.Cmd {
	if s.state.InFlight {
		logger.Debug("Ignoring attendance mark while another is in flight", "student_id", studentID)
		return nil
	}
	s.state.InFlight = true

	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		rec, err := api.MarkAttendance(ctx, studentID, constants.DefaultSubject)
		return AttendanceMarkedMsg{StudentName: studentName, Record: rec, Err: err}
	}
}

// SelectStudentForRecommendations loads recommendations for a student.
//
// Touches: Recommendation (on success only).
func (s *Synchronizer) SelectStudentForRecommendations(studentID int) tea.Cmd {
	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		rec, err := api.RecommendedTasks(ctx, studentID)
		return RecommendationLoadedMsg{StudentID: studentID, Recommendation: rec, Err: err}
	}
}

// AssignTask assigns a task to a student. The recommendation list is left
// as is, so the same task can be assigned again.
//
// Touches: Message.
func (s *Synchronizer) AssignTask(studentID, taskID int) tea.Cmd {
	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		a, err := api.AssignTask(ctx, studentID, taskID)
		return TaskAssignedMsg{StudentID: studentID, TaskID: taskID, Assignment: a, Err: err}
	}
}

// SetActiveTab switches the visible tab
func (s *Synchronizer) SetActiveTab(tab constants.Tab) {
	s.state.ActiveTab = tab
}

// ClearMessage dismisses the transient message
func (s *Synchronizer) ClearMessage() {
	s.state.Message = ""
}

// Update applies a result message. It reports whether the message belonged
// to the Synchronizer and returns any follow-up command.
func (s *Synchronizer) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case StudentsLoadedMsg:
		if msg.Err != nil {
			logger.Error("Error fetching students", "error", msg.Err)
			s.state.Message = MsgStudentsLoadFailed
			return true, nil
		}
		s.state.Students = nonNil(msg.Students)
		return true, nil

	case StatsLoadedMsg:
		if msg.Err != nil {
			logger.Error("Error fetching dashboard stats", "error", msg.Err)
			return true, nil
		}
		s.state.Stats = msg.Stats
		return true, nil

	case AttendanceLoadedMsg:
		if msg.Err != nil {
			logger.Error("Error fetching attendance records", "error", msg.Err)
			return true, nil
		}
		s.state.Attendance = nonNil(msg.Records)
		return true, nil

	case AttendanceMarkedMsg:
		if msg.Err != nil {
			logger.Error("Error marking attendance", "student", msg.StudentName, "error", msg.Err)
			s.state.Message = MsgMarkFailed
			s.state.InFlight = false
			return true, nil
		}
		s.state.Message = MarkedMessage(msg.StudentName, msg.Record.Timestamp)
		s.state.InFlight = false
		// The authoritative list is always re-fetched; nothing is appended locally.
		return true, tea.Batch(s.fetchStats(), s.fetchAttendance())

	case RecommendationLoadedMsg:
		if msg.Err != nil {
			logger.Error("Error fetching recommended tasks", "student_id", msg.StudentID, "error", msg.Err)
			return true, nil
		}
		rec := msg.Recommendation
		rec.RecommendedTasks = nonNil(rec.RecommendedTasks)
		s.state.Recommendation = &rec
		return true, nil

	case TaskAssignedMsg:
		if msg.Err != nil {
			logger.Error("Error assigning task", "student_id", msg.StudentID, "task_id", msg.TaskID, "error", msg.Err)
			s.state.Message = MsgAssignFailed
			return true, nil
		}
		s.state.Message = "📚 " + msg.Assignment.Message
		return true, nil
	}
	return false, nil
}

func (s *Synchronizer) fetchStudents() tea.Cmd {
	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		students, err := api.ListStudents(ctx)
		return StudentsLoadedMsg{Students: students, Err: err}
	}
}

func (s *Synchronizer) fetchStats() tea.Cmd {
	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		stats, err := api.DashboardStats(ctx)
		return StatsLoadedMsg{Stats: stats, Err: err}
	}
}

func (s *Synchronizer) fetchAttendance() tea.Cmd {
	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		records, err := api.ListAttendance(ctx)
		return AttendanceLoadedMsg{Records: records, Err: err}
	}
}

// MarkedMessage is the confirmation shown after a successful mark
func MarkedMessage(name string, ts models.Timestamp) string {
	if ts.IsZero() {
		return fmt.Sprintf("✅ Attendance marked for %s", name)
	}
	return fmt.Sprintf("✅ Attendance marked for %s at %s", name, ts.LocalFormat(constants.TimeFormat))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
