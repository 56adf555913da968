package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/todo/internal/id"
	"github.com/rogersnm/todo/internal/model"
)

const (
	todoMark = "☐"
	doneMark = "☑"
)

var (
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	boldIDStyle   = idStyle.Bold(true)
	todoMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	todoTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	doneTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cheerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	allHdrStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	todoHdrStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	doneHdrStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func StatusMark(s model.Status) string {
	if s == model.StatusDone {
		return doneMarkStyle.Render(doneMark)
	}
	return todoMarkStyle.Render(todoMark)
}

// RenderTask formats one task as "[id] mark description".
func RenderTask(t model.Task) string {
	desc := todoTextStyle.Render(t.Description)
	if t.IsDone() {
		desc = doneTextStyle.Render(t.Description)
	}
	return fmt.Sprintf("[%s] %s %s", idStyle.Render(strconv.Itoa(t.ID)), StatusMark(t.Status), desc)
}

// RenderTaskList renders tasks under a header chosen by the status filter.
// An empty status means the unfiltered list.
func RenderTaskList(tasks []model.Task, status model.Status) string {
	if len(tasks) == 0 {
		switch status {
		case model.StatusTodo:
			return cheerStyle.Render("No pending tasks! 🎉")
		case model.StatusDone:
			return warnStyle.Render("No completed tasks yet.")
		default:
			return warnStyle.Render(`No tasks yet! Add one with: todo add "your task"`)
		}
	}

	var header string
	switch status {
	case model.StatusTodo:
		header = todoHdrStyle.Render("Pending Tasks:")
	case model.StatusDone:
		header = doneHdrStyle.Render("Completed Tasks:")
	default:
		header = allHdrStyle.Render("All Tasks:")
	}

	var sb strings.Builder
	sb.WriteString("\n" + header + "\n\n")
	for _, t := range tasks {
		sb.WriteString(RenderTask(t) + "\n")
	}
	return sb.String()
}

// RenderID styles a task id for status messages, e.g. "#3".
func RenderID(n int) string {
	return boldIDStyle.Render(id.Format(n))
}

func RenderCount(n int) string {
	return boldIDStyle.Render(strconv.Itoa(n))
}

func RenderSuccess(msg string) string {
	return okStyle.Render("✓") + " " + msg
}

func RenderFailure(msg string) string {
	return failStyle.Render("✗") + " " + msg
}
