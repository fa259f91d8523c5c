package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridian-net/netcollector/pkg/collector"
	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/history"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/reconcile"
	"github.com/meridian-net/netcollector/pkg/util"
	"github.com/meridian-net/netcollector/pkg/workerpool"
)

func newSyncCmd() *cobra.Command {
	var devicesFile string
	var deleteStale bool

	cmd := &cobra.Command{
		Use:   "sync [flags] <device...>",
		Short: "Collect device state and reconcile it against NetBox",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), devicesFile, args, app.dryRun, deleteStale)
		},
	}
	cmd.Flags().StringVar(&devicesFile, "devices-file", "devices.yaml", "YAML device list")
	cmd.Flags().BoolVar(&app.dryRun, "dry-run", false, "compute the diff without mutating NetBox")
	cmd.Flags().BoolVar(&deleteStale, "delete-stale", false, "delete inventory objects no longer reported by any collected device")
	return cmd
}

func runSync(ctx context.Context, devicesFile string, names []string, dryRun, deleteStale bool) error {
	var mu sync.Mutex
	devicesByName := make(map[string]model.Device)
	resultsByName := make(map[string]collector.Result)

	agg, err := runCollect(ctx, devicesFile, names, nil, func(d model.Device, res collector.Result) {
		mu.Lock()
		devicesByName[d.Name] = d
		resultsByName[d.Name] = res
		mu.Unlock()
	})
	if err != nil {
		return err
	}

	client := app.netboxClient()
	opts := reconcile.Options{DryRun: dryRun, DeleteStale: deleteStale}

	inScope := func(hostname string) bool {
		for name := range devicesByName {
			if strings.EqualFold(name, hostname) {
				return true
			}
		}
		return false
	}

	totals := map[string]history.EntityStats{}
	var reports []reconcile.Report
	addToTotals := func(result reconcile.EntityResult) {
		s := totals[result.EntityType]
		counts := result.Diff.CountByKind()
		s.Created += counts[diff.ChangeCreate]
		s.Updated += counts[diff.ChangeUpdate]
		s.Deleted += counts[diff.ChangeDelete]
		// ChangeNone is an ordinary no-op (nothing differed); ChangeSkip
		// is a policy-driven withholding (cleanup disabled, excluded by
		// pattern, mode change without VLAN list). Both count as
		// "skipped" in the spec's stats bag, but PolicySkipped keeps the
		// latter visible on its own.
		s.Skipped += counts[diff.ChangeNone] + counts[diff.ChangeSkip]
		s.PolicySkipped += counts[diff.ChangeSkip]
		s.Failed += len(result.Errors)
		s.AlreadyExists += result.AlreadyExists
		totals[result.EntityType] = s
	}

	start := time.Now()

	// First pass: devices, interfaces, IPs, VLANs, inventory. Cables are
	// deferred to a second pass because a cable's remote endpoint may
	// live on a device that hasn't been reconciled yet in this loop
	// (spec.md §4.7 — cable identity spans two devices).
	fleetIfaceIDs := make(map[string]map[string]int)
	for name, res := range resultsByName {
		d := devicesByName[name]
		in := reconcile.BuildInput(d, res, app.policy)

		report, rerr := reconcile.Run(ctx, client, in, opts)
		if rerr != nil {
			util.WithDevice(d.Name).WithField("err", rerr).Warn("reconcile finished with errors")
		}
		reports = append(reports, report)
		fleetIfaceIDs[strings.ToLower(name)] = report.InterfaceIDs
		for _, e := range report.Entities {
			addToTotals(e)
		}
	}

	// Second pass: cables, now that every device's interface IDs are known.
	for name, res := range resultsByName {
		d := devicesByName[name]
		cables := reconcile.BuildCables(res.Neighbors, fleetIfaceIDs, inScope)
		if len(cables) == 0 {
			continue
		}
		cableResult, rerr := reconcile.ReconcileCables(ctx, client, fleetIfaceIDs[strings.ToLower(name)], cables, opts)
		if rerr != nil {
			util.WithDevice(d.Name).WithField("err", rerr).Warn("cable reconcile finished with errors")
		}
		addToTotals(cableResult)
	}

	hostnames := make([]string, 0, len(resultsByName))
	for name := range resultsByName {
		hostnames = append(hostnames, name)
	}

	status := syncStatus(agg, reports, len(hostnames))

	t := app.tasks.Create("sync")
	t.Start(len(reports))
	t.Complete(reports)

	event := history.Event{
		ID:        t.ID(),
		Timestamp: time.Now(),
		Operation: "sync",
		Status:    status,
		Devices:   hostnames,
		Stats:     totals,
		Duration:  time.Since(start),
	}
	for _, r := range reports {
		event.TotalChanges += r.TotalChanges()
	}
	if err := app.hist.Append(event); err != nil {
		util.Logger.WithField("err", err).Warn("failed to persist history entry")
	}

	printSyncSummary(totals, dryRun)
	return nil
}

// syncStatus folds the collection phase's worker-pool status together
// with any per-entity reconcile errors into the single success/partial/
// error trichotomy spec.md §7 requires for the run summary.
func syncStatus(agg workerpool.Aggregate[collector.Result], reports []reconcile.Report, deviceCount int) history.Status {
	if deviceCount == 0 {
		return history.StatusError
	}

	reconcileFailed := false
	for _, r := range reports {
		for _, e := range r.Entities {
			if len(e.Errors) > 0 {
				reconcileFailed = true
			}
		}
	}

	switch {
	case agg.Status == workerpool.StatusError:
		return history.StatusError
	case agg.Status == workerpool.StatusPartial || reconcileFailed:
		return history.StatusPartial
	default:
		return history.StatusSuccess
	}
}

func printSyncSummary(totals map[string]history.EntityStats, dryRun bool) {
	if dryRun {
		fmt.Println("dry-run: no mutations applied")
	}
	for entity, s := range totals {
		fmt.Printf("%-16s +%d new ~%d update -%d delete (%d skipped [%d by policy], %d failed)\n",
			entity, s.Created, s.Updated, s.Deleted, s.Skipped, s.PolicySkipped, s.Failed)
	}
}
