package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/todo/internal/id"
	"github.com/rogersnm/todo/internal/markdown"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadTasks()
		if err != nil {
			return err
		}
		n := l.AddTask(args[0])
		if err := saveTasks(l); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderSuccess(fmt.Sprintf("Task %s added: %s", markdown.RenderID(n), args[0])))
		return nil
	},
}

// statusCommand builds done/undone/remove, which share the lookup-miss
// handling: a missing id is reported on stderr and is not an error.
func statusCommand(use, short, verb string, apply func(*store.TaskList, int) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			l, err := loadTasks()
			if err != nil {
				return err
			}
			if !apply(l, n) {
				fmt.Fprintln(cmd.ErrOrStderr(), markdown.RenderFailure(fmt.Sprintf("Task %s not found.", markdown.RenderID(n))))
				return nil
			}
			if err := saveTasks(l); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderSuccess(fmt.Sprintf("Task %s %s", markdown.RenderID(n), verb)))
			return nil
		},
	}
}

var doneCmd = statusCommand("done", "Mark a task as done", "marked as done!", (*store.TaskList).MarkDone)

var undoneCmd = statusCommand("undone", "Mark a task as todo", "marked as todo.", (*store.TaskList).MarkTodo)

var removeCmd = statusCommand("remove", "Remove a task", "removed.", (*store.TaskList).RemoveTask)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadTasks()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if pending := len(l.ListDone()); pending > 0 && cfg.ConfirmClear && !force {
			msg := fmt.Sprintf("Remove %d completed task(s)?", pending)
			var confirm bool
			if err := huh.NewConfirm().Title(msg).Value(&confirm).Run(); err != nil || !confirm {
				return fmt.Errorf("clear cancelled")
			}
		}

		count := l.ClearDone()
		if err := saveTasks(l); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderSuccess(fmt.Sprintf("Cleared %s completed task(s).", markdown.RenderCount(count))))
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}
