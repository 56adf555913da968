package cmd

import (
	"fmt"

	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/markdown"
	"github.com/rogersnm/todo/internal/model"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		todoOnly, _ := cmd.Flags().GetBool("todo")
		doneOnly, _ := cmd.Flags().GetBool("done")
		asTable, _ := cmd.Flags().GetBool("table")

		l, err := loadTasks()
		if err != nil {
			return err
		}

		var filter store.TaskFilter
		switch {
		case todoOnly:
			filter.Status = model.StatusTodo
		case doneOnly:
			filter.Status = model.StatusDone
		}
		tasks := l.ListTasks(filter)

		if asTable || cfg.Format() == config.FormatTable {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderTaskTable(tasks))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderTaskList(tasks, filter.Status))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("todo", "t", false, "show only pending tasks")
	listCmd.Flags().BoolP("done", "d", false, "show only completed tasks")
	listCmd.Flags().Bool("table", false, "render as a table")
	listCmd.MarkFlagsMutuallyExclusive("todo", "done")

	rootCmd.AddCommand(listCmd)
}
