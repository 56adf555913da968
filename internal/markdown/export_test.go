package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rogersnm/todo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalExport_Layout(t *testing.T) {
	done := model.NewTask(2, "pay bills")
	done.MarkDone()
	tasks := []model.Task{model.NewTask(1, "buy milk"), done}

	data, err := MarshalExport(tasks, 3)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Contains(t, out, "format: todo/v1\n")
	assert.Contains(t, out, "next_id: 3\n")
	assert.Contains(t, out, "- [ ] #1 buy milk\n")
	assert.Contains(t, out, "- [x] #2 pay bills\n")
}

func TestExport_ParseRoundTrip(t *testing.T) {
	done := model.NewTask(5, "#7 looks like an id")
	done.MarkDone()
	tasks := []model.Task{model.NewTask(4, ""), done, model.NewTask(6, "multi\nline")}

	data, err := MarshalExport(tasks, 8)
	require.NoError(t, err)

	meta, items, err := ParseExport(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ExportMeta{Format: ExportFormat, NextID: 8, Total: 3, Done: 1}, meta)
	assert.Equal(t, []ExportItem{
		{Description: "", Done: false},
		{Description: "#7 looks like an id", Done: true},
		{Description: "multi line", Done: false},
	}, items)
}

func TestParseExport_HandWritten(t *testing.T) {
	doc := "---\nformat: todo/v1\n---\n\nSome notes.\n\n* [X] shipped\n- [ ] later\n- not a task\n"

	_, items, err := ParseExport(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []ExportItem{
		{Description: "shipped", Done: true},
		{Description: "later", Done: false},
	}, items)
}

func TestParseExport_MissingFormat(t *testing.T) {
	_, _, err := ParseExport(strings.NewReader("- [ ] no frontmatter\n"))
	assert.Error(t, err)
}

func TestParseExport_WrongFormat(t *testing.T) {
	_, _, err := ParseExport(strings.NewReader("---\nformat: other/v2\n---\n- [ ] a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
