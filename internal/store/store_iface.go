package store

// Store loads and saves a TaskList. LocalStore implements this for a JSON
// file on disk.
type Store interface {
	Load() (*TaskList, error)
	Save(l *TaskList) error
	Path() string
}
