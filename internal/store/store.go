package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/todo/internal/model"
)

// DefaultPath is the task file, relative to the working directory.
const DefaultPath = "tasks.json"

// ErrDataFormat reports persisted state that cannot be parsed or that breaks
// the list invariants.
var ErrDataFormat = errors.New("invalid task data")

// LocalStore implements Store using a single JSON file. There is no locking:
// two processes saving concurrently means the last writer wins.
type LocalStore struct {
	path string
}

// compile-time check
var _ Store = (*LocalStore)(nil)

func NewLocal(path string) *LocalStore {
	if path == "" {
		path = DefaultPath
	}
	return &LocalStore{path: path}
}

func (s *LocalStore) Path() string {
	return s.path
}

// document is the on-disk shape. Pointers distinguish missing fields from
// zero values.
type document struct {
	Tasks  *[]model.Task `json:"tasks"`
	NextID *int          `json:"next_id"`
}

// Load reads the task file. A missing file yields an empty list.
func (s *LocalStore) Load() (*TaskList, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTaskList(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	l, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return l, nil
}

// Save writes the full list, replacing any existing file.
func (s *LocalStore) Save(l *TaskList) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating parent dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Encode serializes l as indented JSON.
func Encode(l *TaskList) ([]byte, error) {
	tasks := l.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	nextID := l.nextID
	data, err := json.MarshalIndent(document{Tasks: &tasks, NextID: &nextID}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses persisted state and checks the list invariants. Every
// failure wraps ErrDataFormat.
func Decode(data []byte) (*TaskList, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	if doc.Tasks == nil {
		return nil, fmt.Errorf("%w: missing field \"tasks\"", ErrDataFormat)
	}
	if doc.NextID == nil {
		return nil, fmt.Errorf("%w: missing field \"next_id\"", ErrDataFormat)
	}

	seen := make(map[int]bool, len(*doc.Tasks))
	for _, t := range *doc.Tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate task id %d", ErrDataFormat, t.ID)
		}
		seen[t.ID] = true
		if t.ID >= *doc.NextID {
			return nil, fmt.Errorf("%w: next_id %d is not above task id %d", ErrDataFormat, *doc.NextID, t.ID)
		}
	}
	if *doc.NextID < 1 {
		return nil, fmt.Errorf("%w: next_id must be positive, got %d", ErrDataFormat, *doc.NextID)
	}

	return &TaskList{tasks: *doc.Tasks, nextID: *doc.NextID}, nil
}
