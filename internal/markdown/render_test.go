package markdown

import (
	"strings"
	"testing"

	"github.com/rogersnm/todo/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderTask_Todo(t *testing.T) {
	out := RenderTask(model.NewTask(3, "pay"))
	assert.Contains(t, out, "3")
	assert.Contains(t, out, todoMark)
	assert.Contains(t, out, "pay")
}

func TestRenderTask_Done(t *testing.T) {
	task := model.NewTask(4, "milk")
	task.MarkDone()
	out := RenderTask(task)
	assert.Contains(t, out, doneMark)
	assert.NotContains(t, out, todoMark)
}

func TestRenderTaskList_Empty(t *testing.T) {
	assert.Contains(t, RenderTaskList(nil, ""), "No tasks yet!")
	assert.Contains(t, RenderTaskList(nil, model.StatusTodo), "No pending tasks!")
	assert.Contains(t, RenderTaskList(nil, model.StatusDone), "No completed tasks yet.")
}

func TestRenderTaskList_HeadersAndOrder(t *testing.T) {
	tasks := []model.Task{model.NewTask(2, "second"), model.NewTask(1, "first")}

	out := RenderTaskList(tasks, "")
	assert.Contains(t, out, "All Tasks:")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))

	assert.Contains(t, RenderTaskList(tasks, model.StatusTodo), "Pending Tasks:")
	assert.Contains(t, RenderTaskList(tasks, model.StatusDone), "Completed Tasks:")
}

func TestRenderMessages(t *testing.T) {
	assert.Contains(t, RenderSuccess("Task "+RenderID(1)+" removed."), "Task #1 removed.")
	assert.Contains(t, RenderFailure("Task "+RenderID(9)+" not found."), "Task #9 not found.")
}

func TestRenderTaskTable(t *testing.T) {
	assert.Equal(t, "No tasks found.", RenderTaskTable(nil))

	out := RenderTaskTable([]model.Task{model.NewTask(1, "alpha")})
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "Todo")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Tasks\n\n- [ ] #1 alpha\n")
	assert.NoError(t, err)
	assert.Contains(t, out, "alpha")
}
