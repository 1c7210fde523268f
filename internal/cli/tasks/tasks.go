package tasks

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/models"
)

type ListCmd struct {
	All bool `help:"Include inactive tasks."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client.ListTasks(ctx.Background())
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	var shown []models.Task
	for _, t := range tasks {
		if t.IsActive || c.All {
			shown = append(shown, t)
		}
	}
	printTasks(ctx, shown)
	return nil
}

type RecommendCmd struct {
	StudentID int `arg:"" help:"Student ID."`
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.Client.RecommendedTasks(ctx.Background(), c.StudentID)
	if err != nil {
		return fmt.Errorf("failed to get recommended tasks: %w", err)
	}

	header := "📚 Recommended Tasks for " + rec.StudentName
	if interest := rec.Interest(); interest != "" {
		header += fmt.Sprintf(" (%s)", interest)
	}
	ctx.Println(header)
	printTasks(ctx, rec.RecommendedTasks)
	return nil
}

type AssignCmd struct {
	StudentID int `arg:"" help:"Student ID."`
	TaskID    int `arg:"" help:"Task ID."`
}

func (c *AssignCmd) Run(ctx *cli.Context) error {
	a, err := ctx.Client.AssignTask(ctx.Background(), c.StudentID, c.TaskID)
	if err != nil {
		return fmt.Errorf("failed to assign task %d to student %d: %w", c.TaskID, c.StudentID, err)
	}
	ctx.Println("📚 " + a.Message)
	return nil
}

func printTasks(ctx *cli.Context, tasks []models.Task) {
	if len(tasks) == 0 {
		ctx.Println("No tasks found.")
		return
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			strconv.Itoa(t.ID),
			t.Title,
			cli.OrDash(t.Subject),
			cli.OrDash(t.DifficultyLevel),
			fmt.Sprintf("%d min", t.EstimatedTime),
		}
	}
	ctx.Println(cli.Table([]string{"ID", "Title", "Subject", "Difficulty", "Time"}, rows))
}
