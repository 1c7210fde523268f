package stats

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/edusync/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(1).
			Width(24).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// View renders the four dashboard cards
func View(s models.DashboardStats) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("👥 Total Students", strconv.Itoa(s.TotalStudents)),
		card("📅 Today's Attendance", strconv.Itoa(s.AttendanceToday)),
		card("📊 Attendance %", Percentage(s.AttendancePercentage)),
		card("📚 Active Tasks", strconv.Itoa(s.ActiveTasks)),
	)
}

// Percentage renders a server percentage without trailing zeros
func Percentage(p float64) string {
	return fmt.Sprintf("%s%%", strconv.FormatFloat(p, 'f', -1, 64))
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(label),
		valueStyle.Render(value),
	))
}
