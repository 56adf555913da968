package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/logging"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	configDir string
	taskFile  = store.DefaultPath
	verbose   bool
	strict    bool
	st        store.Store
	cfg       *config.Config
	logger    *log.Logger
)

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".todo")
	}
	return filepath.Join(home, ".todo")
}

var rootCmd = &cobra.Command{
	Use:     "todo",
	Short:   "Manage your tasks from the command line",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = logging.New(cmd.ErrOrStderr(), verbose || cfg.Verbose)
		logger.Debug("config loaded", "dir", configDir, "list_format", cfg.Format())

		st = store.NewLocal(taskFile)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", defaultConfigDir(), "configuration directory path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail instead of starting empty when the task file cannot be read")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Confirmation line with the assigned task id",
				},
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "todo add \"buy milk\""},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "One line per task: [id], status marker, description",
				},
				Examples: []mtp.Example{
					{Description: "List all tasks", Command: "todo list"},
					{Description: "List pending tasks", Command: "todo list --todo"},
					{Description: "List completed tasks as a table", Command: "todo list --done --table"},
				},
			},
			"done": {
				Examples: []mtp.Example{
					{Description: "Mark task 1 as done", Command: "todo done 1"},
				},
			},
			"undone": {
				Examples: []mtp.Example{
					{Description: "Move task 1 back to todo", Command: "todo undone 1"},
				},
			},
			"remove": {
				Examples: []mtp.Example{
					{Description: "Remove task 2", Command: "todo remove 2"},
				},
			},
			"clear": {
				Examples: []mtp.Example{
					{Description: "Remove all completed tasks", Command: "todo clear"},
					{Description: "Remove completed tasks without confirming", Command: "todo clear --force"},
				},
			},
			"export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Markdown checklist with YAML frontmatter",
				},
				Examples: []mtp.Example{
					{Description: "Export to a file", Command: "todo export --output tasks.md"},
					{Description: "Preview the export in the terminal", Command: "todo export --pretty"},
				},
			},
			"import": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Exported checklist when the file argument is -",
				},
				Examples: []mtp.Example{
					{Description: "Import tasks from an export", Command: "todo import tasks.md"},
					{Description: "Import from stdin", Command: "cat tasks.md | todo import -"},
				},
			},
			"config set": {
				Examples: []mtp.Example{
					{Description: "Render lists as tables", Command: "todo config set list_format table"},
					{Description: "Ask before clearing", Command: "todo config set confirm_clear true"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

// loadTasks reads the task file. Unless --strict is set, any failure starts
// from an empty list.
func loadTasks() (*store.TaskList, error) {
	l, err := st.Load()
	if err != nil {
		if strict {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}
		logger.Debug("starting from an empty list", "path", st.Path(), "err", err)
		return store.NewTaskList(), nil
	}
	logger.Debug("tasks loaded", "path", st.Path(), "count", l.Len(), "next_id", l.NextID())
	return l, nil
}

func saveTasks(l *store.TaskList) error {
	if err := st.Save(l); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	logger.Debug("tasks saved", "path", st.Path(), "count", l.Len())
	return nil
}
