package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julianstephens/edusync/internal/models"
)

// ListStudents returns every student known to the server
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, "/students", nil, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns a single student
func (c *Client) GetStudent(ctx context.Context, id int) (models.Student, error) {
	var student models.Student
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), nil, nil, &student)
	return student, err
}

// CreateStudent registers a new student and returns the stored record
func (c *Client) CreateStudent(ctx context.Context, s models.NewStudent) (models.Student, error) {
	var student models.Student
	err := c.do(ctx, http.MethodPost, "/students", nil, s, &student)
	return student, err
}

// RecommendedTasks returns the server's task recommendations for a student.
// A missing task list decodes as empty.
func (c *Client) RecommendedTasks(ctx context.Context, studentID int) (models.Recommendation, error) {
	var rec models.Recommendation
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d/recommended-tasks", studentID), nil, nil, &rec)
	if err != nil {
		return models.Recommendation{}, err
	}
	if rec.RecommendedTasks == nil {
		rec.RecommendedTasks = []models.Task{}
	}
	return rec, nil
}

// AssignTask assigns a task to a student
func (c *Client) AssignTask(ctx context.Context, studentID, taskID int) (models.Assignment, error) {
	var a models.Assignment
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/students/%d/assign-task/%d", studentID, taskID), nil, nil, &a)
	return a, err
}
