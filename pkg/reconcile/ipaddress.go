package reconcile

import (
	"context"
	"strings"

	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// IPAddressDesired is one address assignment a device reports.
type IPAddressDesired struct {
	Address   string `validate:"required"` // CIDR form, e.g. "10.0.0.1/24"
	Interface string `validate:"required"`
}

// reconcileIPAddresses converges addresses against the interfaces
// already reconciled this run. ifaceIDs maps lowercase interface name to
// its NetBox interface ID; an address whose interface isn't in that map
// (interface reconciliation failed or was skipped) is itself skipped.
func reconcileIPAddresses(ctx context.Context, client *netbox.Client, ifaceIDs map[string]int, desired []IPAddressDesired, opts Options) (EntityResult, error) {
	result := EntityResult{EntityType: "ip_address"}

	for _, d := range desired {
		ifaceID, ok := ifaceIDs[strings.ToLower(d.Interface)]
		if !ok {
			continue
		}

		existingOnIface, err := client.ListIPAddressesForInterface(ctx, ifaceID)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		var current *netbox.IPAddressRecord
		for i := range existingOnIface {
			if existingOnIface[i].Address == d.Address {
				current = &existingOnIface[i]
				break
			}
		}

		if current != nil {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "ip_address", Key: d.Address, Kind: diff.ChangeNone})
			continue
		}

		// The address may already exist in NetBox assigned to some other
		// interface (a move, per spec.md §4.7's "IP reassignment" rule)
		// rather than needing a fresh create.
		moved, err := findAndReassign(ctx, client, d, ifaceID, opts.DryRun)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		if moved {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{
				EntityType: "ip_address", Key: d.Address, Kind: diff.ChangeUpdate,
				Fields: []diff.FieldChange{{Field: "assigned_object_id", Desired: ifaceID}},
			})
			if !opts.DryRun {
				result.Applied++
			}
			continue
		}

		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "ip_address", Key: d.Address, Kind: diff.ChangeCreate})
		if opts.DryRun {
			continue
		}
		if _, err := client.CreateIPAddress(ctx, netbox.IPAddressRecord{
			Address: d.Address, AssignedObjectID: ifaceID, AssignedObjectType: "dcim.interface", Status: "active",
		}); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Applied++
	}

	return result, nil
}

// findAndReassign looks for an existing IP address record with the same
// address text assigned elsewhere and, if found, re-points it at the new
// interface rather than creating a duplicate (spec.md §4.7's "IP
// reassignment" rule). Under dry-run it reports the move without sending
// the update.
func findAndReassign(ctx context.Context, client *netbox.Client, d IPAddressDesired, newIfaceID int, dryRun bool) (bool, error) {
	existing, err := client.FindIPAddressByText(ctx, d.Address)
	if err != nil || existing == nil {
		return false, err
	}
	if existing.AssignedObjectID == newIfaceID && existing.AssignedObjectType == "dcim.interface" {
		return true, nil
	}
	if dryRun {
		return true, nil
	}
	existing.AssignedObjectID = newIfaceID
	existing.AssignedObjectType = "dcim.interface"
	if _, err := client.UpdateIPAddress(ctx, existing.ID, *existing); err != nil {
		return false, err
	}
	return true, nil
}
