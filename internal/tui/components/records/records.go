package records

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Width(20)
	subjectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Width(14)
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(26)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type row struct {
	name    string
	subject string
	time    string
	kind    string
}

// Model renders the most recent attendance records
type Model struct {
	rows []row
}

func New() Model {
	return Model{}
}

// SetRecords takes records newest first and resolves student names with nameOf
func (m *Model) SetRecords(recs []models.AttendanceRecord, nameOf func(studentID int) string) {
	m.rows = make([]row, len(recs))
	for i, r := range recs {
		m.rows[i] = row{
			name:    nameOf(r.StudentID),
			subject: r.Subject,
			time:    r.Timestamp.LocalFormat(constants.DateTimeFormat),
			kind:    r.AttendanceType,
		}
	}
}

func (m Model) Len() int {
	return len(m.rows)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("📊 Recent Attendance Records"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("No attendance recorded yet."))
		return b.String()
	}

	for _, r := range m.rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(r.name),
			subjectStyle.Render(r.subject),
			timeStyle.Render(r.time),
			statusStyle.Render(fmt.Sprintf("✅ %s", r.kind)),
		))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
