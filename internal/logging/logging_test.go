package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("loading tasks", "path", "tasks.json")
	assert.Empty(t, buf.String())

	l.Warn("save skipped")
	assert.Contains(t, buf.String(), "save skipped")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debug("loading tasks", "path", "tasks.json")
	assert.Contains(t, buf.String(), "loading tasks")
	assert.Contains(t, buf.String(), "tasks.json")
}
