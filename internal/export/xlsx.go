package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/models"
)

const (
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

var (
	attendanceHeader = []interface{}{"Record ID", "Student", "Roll Number", "Subject", "Timestamp", "Type", "Marked By"}
	summaryHeader    = []interface{}{"Student ID", "Student", "Roll Number", "Class", "Career Interest", "Total Days"}
)

// WriteAttendance writes an attendance workbook to w. Records keep server
// order; the summary has one row per student in student-list order.
func WriteAttendance(w io.Writer, students []models.Student, records []models.AttendanceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AttendanceSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	byID := make(map[int]models.Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	if err := writeRow(f, AttendanceSheet, 1, attendanceHeader); err != nil {
		return err
	}
	for i, r := range records {
		name, roll := constants.UnknownStudentName, ""
		if s, ok := byID[r.StudentID]; ok {
			name, roll = s.Name, s.RollNumber
		}
		row := []interface{}{
			r.ID, name, roll, r.Subject,
			r.Timestamp.LocalFormat(constants.DateTimeFormat),
			r.AttendanceType, r.MarkedBy,
		}
		if err := writeRow(f, AttendanceSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, SummarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, s := range students {
		days := len(dashboard.AttendanceHistoryFor(records, s.ID))
		row := []interface{}{s.ID, s.Name, s.RollNumber, s.ClassName, s.Interest(), days}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(AttendanceSheet, "A1", "G1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "F1", bold); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
