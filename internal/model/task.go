package model

import "fmt"

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewTask returns a task in the Todo state. The description is taken as-is.
func NewTask(id int, description string) Task {
	return Task{ID: id, Description: description, Status: StatusTodo}
}

func (t *Task) MarkDone() {
	t.Status = StatusDone
}

func (t *Task) MarkTodo() {
	t.Status = StatusTodo
}

func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

func (t *Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	return ValidateStatus(t.Status)
}
