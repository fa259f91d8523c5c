// Package reconcile compares freshly collected model records against the
// NetBox inventory of record and applies the minimal set of create,
// update, and delete calls needed to converge them, per spec.md §4.7.
// Each entity type owns its own identity key and field-mapping rules;
// this file holds the cross-entity orchestration, dry-run gate, and
// deterministic apply ordering.
package reconcile

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
	"github.com/meridian-net/netcollector/pkg/util"
)

// Options controls a reconcile run.
type Options struct {
	// DryRun computes and returns the diff without calling any write
	// endpoint, per spec.md §4.7's dry-run gate.
	DryRun bool
	// DeleteStale, when true, removes inventory objects no longer
	// reported by the device within the scope of the current run.
	DeleteStale bool
}

// EntityResult is one entity type's reconcile outcome.
type EntityResult struct {
	EntityType string
	Diff       diff.Result
	Applied    int
	// AlreadyExists counts objects that matched an existing record
	// without needing a write — distinct from Applied (a create or
	// update actually sent). Cable reconciliation (spec.md §4.7) uses
	// this to distinguish links that already existed by endpoint pair
	// from links newly created.
	AlreadyExists int
	Errors        []error
}

// Report is the full outcome of one reconcile run across every entity
// type, in the fixed apply order spec.md §4.7 mandates: devices,
// interfaces, IP addresses, VLANs, inventory items, cables.
type Report struct {
	Entities []EntityResult

	// InterfaceIDs maps this device's lowercased interface name to its
	// NetBox interface ID, as resolved during this run. A fleet-wide sync
	// needs every device's map before cables can be reconciled (a cable's
	// remote endpoint lives on a different device), so callers doing a
	// multi-device run reconcile cables in a second pass via
	// ReconcileCables once every device's Report has been collected.
	InterfaceIDs map[string]int
}

// TotalChanges sums TotalChanges across every entity's diff.
func (r Report) TotalChanges() int {
	n := 0
	for _, e := range r.Entities {
		n += e.Diff.TotalChanges()
	}
	return n
}

var validate = validator.New()

// Input bundles one device's freshly collected, normalized records ready
// to reconcile against NetBox.
type Input struct {
	Device      DeviceDesired
	Interfaces  []InterfaceDesired
	IPAddresses []IPAddressDesired
	VLANs       []VLANDesired
	Inventory   []InventoryItemDesired
	Cables      []CableDesired
}

// Run reconciles one device's full record set against NetBox, in the
// fixed entity order: devices -> interfaces -> IP addresses -> VLANs ->
// inventory items -> cables. Per-entity errors are aggregated with
// go-multierror rather than aborting the remaining entities, so a
// failure reconciling IP addresses does not block VLAN reconciliation.
func Run(ctx context.Context, client *netbox.Client, in Input, opts Options) (Report, error) {
	var report Report
	var errs *multierror.Error

	deviceResult, deviceID, err := reconcileDevice(ctx, client, in.Device, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, deviceResult)

	ifaceResult, ifaceIDs, err := reconcileInterfaces(ctx, client, deviceID, in.Interfaces, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, ifaceResult)
	report.InterfaceIDs = ifaceIDs

	ipResult, err := reconcileIPAddresses(ctx, client, ifaceIDs, in.IPAddresses, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, ipResult)

	vlanResult, err := reconcileVLANs(ctx, client, in.VLANs, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, vlanResult)

	invResult, err := reconcileInventory(ctx, client, deviceID, in.Inventory, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, invResult)

	cableResult, err := reconcileCables(ctx, client, ifaceIDs, in.Cables, opts)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	report.Entities = append(report.Entities, cableResult)

	if errs != nil {
		util.WithOperation("reconcile").WithField("device", in.Device.Name).WithField("errors", errs.Len()).Warn("reconcile finished with errors")
		return report, errs.ErrorOrNil()
	}
	return report, nil
}

// ReconcileCables reconciles one device's cable set on its own, given the
// interface ID map Run already resolved for it. A fleet-wide sync calls
// this in a second pass, once every device in the run has been through
// Run and the cross-device interface-ID index is complete — a cable's
// remote endpoint is only resolvable once its owning device has also
// been reconciled (spec.md §4.7's cable identity is the unordered
// endpoint pair across two devices).
func ReconcileCables(ctx context.Context, client *netbox.Client, ifaceIDs map[string]int, desired []CableDesired, opts Options) (EntityResult, error) {
	return reconcileCables(ctx, client, ifaceIDs, desired, opts)
}
