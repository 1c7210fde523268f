package api

import (
	"context"
	"net/http"

	"github.com/julianstephens/edusync/internal/models"
)

// ListTasks returns the active task catalogue
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Info fetches the API root banner. Used as a reachability probe.
func (c *Client) Info(ctx context.Context) (models.APIInfo, error) {
	var info models.APIInfo
	err := c.do(ctx, http.MethodGet, "/", nil, nil, &info)
	return info, err
}
