package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/edusync/internal/models"
)

func TestWriteAttendance(t *testing.T) {
	interest := "Medicine"
	students := []models.Student{
		{ID: 1, Name: "Asha", RollNumber: "R1", ClassName: "10A", CareerInterest: &interest},
		{ID: 2, Name: "Ravi", RollNumber: "R2", ClassName: "10A"},
	}
	records := []models.AttendanceRecord{
		{ID: 11, StudentID: 1, Subject: "General", AttendanceType: "present", MarkedBy: "system"},
		{ID: 12, StudentID: 9, Subject: "Math", AttendanceType: "late", MarkedBy: "teacher"},
		{ID: 13, StudentID: 1, Subject: "General", AttendanceType: "present", MarkedBy: "system"},
	}

	var buf bytes.Buffer
	if err := WriteAttendance(&buf, students, records); err != nil {
		t.Fatalf("WriteAttendance failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", AttendanceSheet, err)
	}
	if len(rows) != 4 {
		t.Fatalf("attendance rows = %d, want header + 3", len(rows))
	}
	if rows[0][0] != "Record ID" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Asha" || rows[1][2] != "R1" {
		t.Errorf("row 1 = %v, want Asha/R1", rows[1])
	}
	if rows[2][1] != "Unknown" {
		t.Errorf("row 2 student = %q, want Unknown", rows[2][1])
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", SummarySheet, err)
	}
	if len(summary) != 3 {
		t.Fatalf("summary rows = %d, want header + 2", len(summary))
	}
	if summary[1][1] != "Asha" || summary[1][4] != "Medicine" || summary[1][5] != "2" {
		t.Errorf("summary for Asha = %v", summary[1])
	}
	if summary[2][5] != "0" {
		t.Errorf("summary for Ravi = %v, want 0 days", summary[2])
	}
}

func TestWriteAttendanceEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAttendance(&buf, nil, nil); err != nil {
		t.Fatalf("WriteAttendance failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
