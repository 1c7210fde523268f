package models

type Task struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Subject         string    `json:"subject"`
	DifficultyLevel string    `json:"difficulty_level"`
	EstimatedTime   int       `json:"estimated_time"` // minutes
	TaskType        string    `json:"task_type"`
	CreatedAt       Timestamp `json:"created_at"`
	IsActive        bool      `json:"is_active"`
}

// Recommendation is the set of tasks suggested for one student
type Recommendation struct {
	StudentID        int     `json:"student_id"`
	StudentName      string  `json:"student_name"`
	CareerInterest   *string `json:"career_interest"`
	RecommendedTasks []Task  `json:"recommended_tasks"`
}

// Interest returns the career-interest tag, or "" when unset
func (r Recommendation) Interest() string {
	if r.CareerInterest == nil {
		return ""
	}
	return *r.CareerInterest
}

// StudentTask is the server's record of an assignment
type StudentTask struct {
	ID         int       `json:"id"`
	StudentID  int       `json:"student_id"`
	TaskID     int       `json:"task_id"`
	Status     string    `json:"status"`
	AssignedAt Timestamp `json:"assigned_at"`
}

// Assignment is the response to assigning a task
type Assignment struct {
	Message     string       `json:"message"`
	StudentTask *StudentTask `json:"student_task,omitempty"`
}

// APIInfo is returned by the API root
type APIInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}
