package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-net/netcollector/pkg/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the persisted operation history",
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryStatsCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var operation string
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.hist.Query(history.Filter{
				Operation: operation,
				Status:    history.Status(status),
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			for _, e := range events {
				fmt.Printf("%s  %-8s %-8s %-20s %v  %s\n", e.Timestamp.Format("2006-01-02T15:04:05"), e.Operation, e.Status, e.Devices, e.Duration, e.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&operation, "operation", "", "filter by operation (collect, sync)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (success, partial, error)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}

func newHistoryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize stored history",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.hist.Stats()
			if err != nil {
				return err
			}
			fmt.Printf("total:        %d\n", stats.Total)
			fmt.Printf("last 24h:     %d\n", stats.Last24Hours)
			for op, n := range stats.ByOperation {
				fmt.Printf("  %-10s %d\n", op, n)
			}
			for st, n := range stats.ByStatus {
				fmt.Printf("  %-10s %d\n", st, n)
			}
			return nil
		},
	}
}
