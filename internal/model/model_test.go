package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_StartsTodo(t *testing.T) {
	task := NewTask(1, "buy milk")
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "buy milk", task.Description)
	assert.Equal(t, StatusTodo, task.Status)
	assert.False(t, task.IsDone())
}

func TestNewTask_EmptyDescription(t *testing.T) {
	task := NewTask(7, "")
	assert.NoError(t, task.Validate())
}

func TestTask_MarkDone_Idempotent(t *testing.T) {
	task := NewTask(1, "x")
	task.MarkDone()
	once := task
	task.MarkDone()
	assert.Equal(t, once, task)
	assert.True(t, task.IsDone())
}

func TestTask_MarkTodo_Idempotent(t *testing.T) {
	task := NewTask(1, "x")
	task.MarkDone()
	task.MarkTodo()
	once := task
	task.MarkTodo()
	assert.Equal(t, once, task)
	assert.Equal(t, StatusTodo, task.Status)
}

func TestTask_Validate_ValidStatuses(t *testing.T) {
	for _, s := range []Status{StatusTodo, StatusDone} {
		task := &Task{ID: 1, Description: "Test", Status: s}
		assert.NoError(t, task.Validate())
	}
}

func TestTask_Validate_MissingStatus(t *testing.T) {
	task := &Task{ID: 1, Description: "Test"}
	assert.Error(t, task.Validate())
}

func TestTask_Validate_UnknownStatus(t *testing.T) {
	task := &Task{ID: 1, Description: "Test", Status: "Doing"}
	err := task.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestTask_Validate_NonPositiveID(t *testing.T) {
	task := &Task{ID: 0, Description: "Test", Status: StatusTodo}
	assert.Error(t, task.Validate())
}

func TestTask_JSONShape(t *testing.T) {
	task := NewTask(2, "pay bills")
	task.MarkDone()

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"description":"pay bills","status":"Done"}`, string(data))
}
