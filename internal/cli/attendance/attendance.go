package attendance

import (
	"fmt"
	"os"
	"strconv"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/export"
	"github.com/julianstephens/edusync/internal/models"
)

type ListCmd struct {
	Student int `short:"s" help:"Only show records for this student ID."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Client.ListAttendance(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}
	students, err := ctx.Client.ListStudents(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list students: %w", err)
	}

	if c.Student != 0 {
		records = dashboard.AttendanceHistoryFor(records, c.Student)
	}
	printRecords(ctx, records, cli.StudentNames(students))
	return nil
}

type MarkCmd struct {
	ID      int    `arg:"" help:"Student ID."`
	Subject string `help:"Subject label." default:"General"`
	Name    string `help:"Name to show in the confirmation. Looked up when omitted."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	name := c.Name
	if name == "" {
		s, err := ctx.Client.GetStudent(ctx.Background(), c.ID)
		if err != nil {
			return fmt.Errorf("failed to get student %d: %w", c.ID, err)
		}
		name = s.Name
	}

	rec, err := ctx.Client.MarkAttendance(ctx.Background(), c.ID, c.Subject)
	if err != nil {
		return fmt.Errorf("%s: %w", dashboard.MsgMarkFailed, err)
	}
	ctx.Println(dashboard.MarkedMessage(name, rec.Timestamp))
	return nil
}

type HistoryCmd struct {
	ID int `arg:"" help:"Student ID."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Client.StudentAttendance(ctx.Background(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to get attendance for student %d: %w", c.ID, err)
	}
	if len(records) == 0 {
		ctx.Println("No attendance recorded yet.")
		return nil
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.ID),
			r.Subject,
			r.Timestamp.LocalFormat(constants.DateTimeFormat),
			r.AttendanceType,
		}
	}
	ctx.Println(cli.Table([]string{"ID", "Subject", "Time", "Type"}, rows))
	ctx.Printf("Total Attendance: %d days\n", len(records))
	return nil
}

type ExportCmd struct {
	Out string `short:"o" help:"Output .xlsx file." type:"path" default:"attendance.xlsx"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	students, err := ctx.Client.ListStudents(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list students: %w", err)
	}
	records, err := ctx.Client.ListAttendance(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Out, err)
	}
	if err := export.WriteAttendance(f, students, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to export attendance: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	ctx.Printf("Exported %d records for %d students to %s\n", len(records), len(students), c.Out)
	return nil
}

func printRecords(ctx *cli.Context, records []models.AttendanceRecord, names map[int]string) {
	if len(records) == 0 {
		ctx.Println("No attendance recorded yet.")
		return
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		name, ok := names[r.StudentID]
		if !ok {
			name = constants.UnknownStudentName
		}
		rows[i] = []string{
			strconv.Itoa(r.ID),
			name,
			r.Subject,
			r.Timestamp.LocalFormat(constants.DateTimeFormat),
			r.AttendanceType,
		}
	}
	ctx.Println(cli.Table([]string{"ID", "Student", "Subject", "Time", "Type"}, rows))
}
