package store

import "github.com/rogersnm/todo/internal/model"

type TaskFilter struct {
	Status model.Status
}

// TaskList is the in-memory collection of tasks plus the id counter. Tasks
// keep insertion order. Ids come from nextID and are never reused.
type TaskList struct {
	tasks  []model.Task
	nextID int
}

func NewTaskList() *TaskList {
	return &TaskList{nextID: 1}
}

func (l *TaskList) NextID() int {
	return l.nextID
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// AddTask appends a Todo task and returns its id.
func (l *TaskList) AddTask(description string) int {
	id := l.nextID
	l.tasks = append(l.tasks, model.NewTask(id, description))
	l.nextID++
	return id
}

// Get returns a copy of the task with the given id.
func (l *TaskList) Get(id int) (model.Task, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.tasks[i], true
	}
	return model.Task{}, false
}

func (l *TaskList) MarkDone(id int) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.tasks[i].MarkDone()
	return true
}

func (l *TaskList) MarkTodo(id int) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.tasks[i].MarkTodo()
	return true
}

func (l *TaskList) RemoveTask(id int) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// ClearDone drops every Done task and returns how many were removed.
func (l *TaskList) ClearDone() int {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.IsDone() {
			kept = append(kept, t)
		}
	}
	removed := len(l.tasks) - len(kept)
	clear(l.tasks[len(kept):])
	l.tasks = kept
	return removed
}

// ListTasks returns copies of the tasks matching filter, in insertion order.
func (l *TaskList) ListTasks(filter TaskFilter) []model.Task {
	tasks := make([]model.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (l *TaskList) ListAll() []model.Task {
	return l.ListTasks(TaskFilter{})
}

func (l *TaskList) ListTodo() []model.Task {
	return l.ListTasks(TaskFilter{Status: model.StatusTodo})
}

func (l *TaskList) ListDone() []model.Task {
	return l.ListTasks(TaskFilter{Status: model.StatusDone})
}

// indexOf is a linear scan; lists are small.
func (l *TaskList) indexOf(id int) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
