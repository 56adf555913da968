package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rogersnm/todo/internal/markdown"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as a Markdown checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadTasks()
		if err != nil {
			return err
		}
		data, err := markdown.MarshalExport(l.ListAll(), l.NextID())
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderSuccess(fmt.Sprintf("Exported %s task(s) to %s", markdown.RenderCount(l.Len()), output)))
			return nil
		}

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			rendered, err := markdown.RenderMarkdown(string(data))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append tasks from an exported Markdown checklist (- reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}

		meta, items, err := markdown.ParseExport(r)
		if err != nil {
			return err
		}
		logger.Debug("parsed export", "file", args[0], "items", len(items), "exported_next_id", meta.NextID)

		l, err := loadTasks()
		if err != nil {
			return err
		}
		for _, it := range items {
			n := l.AddTask(it.Description)
			if it.Done {
				l.MarkDone(n)
			}
		}
		if err := saveTasks(l); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderSuccess(fmt.Sprintf("Imported %s task(s).", markdown.RenderCount(len(items)))))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	exportCmd.Flags().Bool("pretty", false, "render with ANSI styling")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
