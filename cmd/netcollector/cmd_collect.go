package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridian-net/netcollector/pkg/collector"
	"github.com/meridian-net/netcollector/pkg/history"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
	"github.com/meridian-net/netcollector/pkg/registry"
	"github.com/meridian-net/netcollector/pkg/task"
	"github.com/meridian-net/netcollector/pkg/util"
	"github.com/meridian-net/netcollector/pkg/workerpool"
)

func newCollectCmd() *cobra.Command {
	var devicesFile string
	var only []string

	cmd := &cobra.Command{
		Use:   "collect [flags] <device...>",
		Short: "Collect device state without touching NetBox",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd.Context(), devicesFile, args, only, nil)
		},
	}
	cmd.Flags().StringVar(&devicesFile, "devices-file", "devices.yaml", "YAML device list")
	cmd.Flags().StringSliceVar(&only, "entities", nil, "restrict to these entities (interfaces,mac,neighbors,inventory)")
	return cmd
}

// runCollect runs the worker pool across the requested (or every
// registered) device and returns the per-device results. sink, if
// non-nil, receives each device's collector.Result as it completes — sync
// uses this to gather every device's result for the reconcile passes that
// run after collection finishes.
func runCollect(ctx context.Context, devicesFile string, names []string, only []string, sink func(model.Device, collector.Result)) (workerpool.Aggregate[collector.Result], error) {
	reg, err := registry.LoadYAMLFile(devicesFile)
	if err != nil {
		return workerpool.Aggregate[collector.Result]{}, err
	}

	devices, err := reg.ListDevices(ctx)
	if err != nil {
		return workerpool.Aggregate[collector.Result]{}, err
	}
	if len(names) > 0 {
		devices = filterDevices(devices, names)
	}

	t := app.tasks.Create("collect")
	t.Start(len(devices))

	byName := make(map[string]model.Device, len(devices))
	hostnames := make([]string, 0, len(devices))
	for _, d := range devices {
		byName[d.Name] = d
		hostnames = append(hostnames, d.Name)
	}

	parserReg := parser.NewRegistry()
	entities := entitySetFrom(only)
	maxWorkers := app.maxWorkers
	if maxWorkers <= 0 {
		maxWorkers = app.cfg.GetMaxWorkers()
	}

	start := time.Now()
	agg := workerpool.Run(ctx, hostnames, maxWorkers, func(ctx context.Context, name string) ([]collector.Result, error) {
		d := byName[name]
		creds, err := app.creds.Prompt(ctx, d)
		if err != nil {
			return nil, err
		}
		res, err := collector.RunDevice(ctx, d.Host, d.Platform, creds, app.sessionOptions(), parserReg, collector.RunOptions{
			Enrichment: collector.DefaultEnrichmentConfig(),
			Entities:   entities,
		})
		if err != nil {
			return nil, err
		}
		if sink != nil {
			sink(d, res)
		}
		return []collector.Result{res}, nil
	})

	recordHistory(t, "collect", hostnames, agg, time.Since(start))
	printCollectSummary(agg)
	return agg, nil
}

func entitySetFrom(only []string) collector.EntitySet {
	if len(only) == 0 {
		return collector.DefaultEntitySet()
	}
	set := collector.EntitySet{}
	for _, e := range only {
		switch e {
		case "interfaces":
			set.Interfaces = true
		case "mac":
			set.MACTable = true
		case "neighbors":
			set.Neighbors = true
		case "inventory":
			set.Inventory = true
		}
	}
	return set
}

func filterDevices(devices []model.Device, names []string) []model.Device {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []model.Device
	for _, d := range devices {
		if want[d.Name] {
			out = append(out, d)
		}
	}
	return out
}

func recordHistory(t *task.Task, operation string, devices []string, agg workerpool.Aggregate[collector.Result], dur time.Duration) {
	status := history.StatusSuccess
	var errMsg string
	for _, r := range agg.Results {
		if r.Err != nil && !r.Cancelled {
			errMsg = r.Err.Error()
		}
	}
	switch agg.Status {
	case workerpool.StatusPartial:
		status = history.StatusPartial
	case workerpool.StatusError:
		status = history.StatusError
	}

	if status == history.StatusError {
		t.Fail(fmt.Errorf("%s", errMsg))
	} else {
		t.Complete(agg)
	}

	event := history.Event{
		ID:        t.ID(),
		Timestamp: time.Now(),
		Operation: operation,
		Status:    status,
		Devices:   devices,
		Duration:  dur,
		Error:     errMsg,
	}
	if len(devices) == 1 {
		event.Device = devices[0]
	}
	if err := app.hist.Append(event); err != nil {
		util.Logger.WithField("err", err).Warn("failed to persist history entry")
	}
}

func printCollectSummary(agg workerpool.Aggregate[collector.Result]) {
	var ok, failed, cancelled int
	for _, r := range agg.Results {
		if r.Cancelled {
			cancelled++
			fmt.Printf("%-32s NOT ATTEMPTED (cancelled)\n", r.Device)
			continue
		}
		if r.Err != nil {
			failed++
			fmt.Printf("%-32s FAILED: %v\n", r.Device, r.Err)
			continue
		}
		ok++
		var ifaces, macs, neighbors, inv int
		for _, res := range r.Records {
			ifaces += len(res.Interfaces)
			macs += len(res.MACTable)
			neighbors += len(res.Neighbors)
			inv += len(res.Inventory)
		}
		fmt.Printf("%-32s ok  interfaces=%-4d mac=%-4d neighbors=%-4d inventory=%-4d\n", r.Device, ifaces, macs, neighbors, inv)
	}
	fmt.Printf("\n%d succeeded, %d failed, %d not attempted, status=%s\n", ok, failed, cancelled, agg.Status)
}
