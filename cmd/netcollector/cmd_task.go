package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Inspect tracked background runs",
	}
	cmd.AddCommand(newTaskListCmd(), newTaskGetCmd())
	return cmd
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every tracked task",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range app.tasks.List() {
				fmt.Printf("%-36s %-10s %-10s %3d%%\n", s.ID, s.Operation, s.Status, s.ProgressPercent)
			}
			return nil
		},
	}
}

func newTaskGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <task-id>",
		Short: "Show one task's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := app.tasks.Get(args[0])
			if t == nil {
				return fmt.Errorf("task %q not found", args[0])
			}
			s := t.Snapshot()
			fmt.Printf("id:        %s\n", s.ID)
			fmt.Printf("operation: %s\n", s.Operation)
			fmt.Printf("status:    %s\n", s.Status)
			fmt.Printf("progress:  %d%% (step %d/%d, item %d/%d) elapsed=%dms\n", s.ProgressPercent, s.StepIndex, s.TotalSteps, s.ItemIndex, s.TotalItems, s.ElapsedMs)
			if s.ItemName != "" {
				fmt.Printf("current:   %s\n", s.ItemName)
			}
			if s.Message != "" {
				fmt.Printf("message:   %s\n", s.Message)
			}
			for _, step := range s.Steps {
				mark := " "
				if step.Done {
					mark = "x"
				}
				fmt.Printf("  [%s] %s\n", mark, step.Name)
			}
			if s.Error != "" {
				fmt.Printf("error:     %s\n", s.Error)
			}
			return nil
		},
	}
}
