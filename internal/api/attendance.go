package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/models"
)

// ListAttendance returns every attendance record
func (c *Client) ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// StudentAttendance returns the server-side filtered records for one student
func (c *Client) StudentAttendance(ctx context.Context, studentID int) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/attendance/%d", studentID), nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkAttendance records a present mark for the student. An empty subject
// falls back to the default subject.
func (c *Client) MarkAttendance(ctx context.Context, studentID int, subject string) (models.AttendanceRecord, error) {
	if subject == "" {
		subject = constants.DefaultSubject
	}
	var rec models.AttendanceRecord
	query := url.Values{"subject": []string{subject}}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/attendance/%d", studentID), query, nil, &rec)
	return rec, err
}

// DashboardStats returns the server's current aggregate counters
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats)
	return stats, err
}
