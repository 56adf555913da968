package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rogersnm/todo/internal/model"
	"gopkg.in/yaml.v3"
)

// ExportFormat tags documents written by MarshalExport.
const ExportFormat = "todo/v1"

type ExportMeta struct {
	Format string `yaml:"format"`
	NextID int    `yaml:"next_id"`
	Total  int    `yaml:"total"`
	Done   int    `yaml:"done"`
}

// ExportItem is one checklist entry read back from an export.
type ExportItem struct {
	Description string
	Done        bool
}

var checklistLine = regexp.MustCompile(`^[-*] \[([ xX])\](?: #\d+)?(?: (.*))?$`)

// MarshalExport writes tasks as a Markdown checklist with YAML frontmatter.
// Newlines inside descriptions become spaces so each task stays on one line.
func MarshalExport(tasks []model.Task, nextID int) ([]byte, error) {
	meta := ExportMeta{Format: ExportFormat, NextID: nextID, Total: len(tasks)}
	for _, t := range tasks {
		if t.IsDone() {
			meta.Done++
		}
	}
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString("# Tasks\n\n")
	for _, t := range tasks {
		box := " "
		if t.IsDone() {
			box = "x"
		}
		desc := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(t.Description)
		fmt.Fprintf(&buf, "- [%s] #%d %s\n", box, t.ID, desc)
	}
	return buf.Bytes(), nil
}

// ParseExport reads a document produced by MarshalExport. Lines that are
// not checklist items are skipped.
func ParseExport(r io.Reader) (ExportMeta, []ExportItem, error) {
	var meta ExportMeta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if meta.Format != ExportFormat {
		return meta, nil, fmt.Errorf("unsupported export format %q (want %s)", meta.Format, ExportFormat)
	}

	var items []ExportItem
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		m := checklistLine.FindStringSubmatch(strings.TrimRight(sc.Text(), "\r"))
		if m == nil {
			continue
		}
		items = append(items, ExportItem{Description: m[2], Done: m[1] != " "})
	}
	if err := sc.Err(); err != nil {
		return meta, nil, fmt.Errorf("reading checklist: %w", err)
	}
	return meta, items, nil
}
