package reconcile

import (
	"context"
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// InventoryItemDesired is one hardware component a device reports.
type InventoryItemDesired struct {
	Name         string `validate:"required"`
	Manufacturer string
	PartID       string
	Serial       string
	Description  string
}

// reconcileInventory converges inventory items by (device, name) identity.
// A serial-number-only difference on an otherwise-matching slot is
// treated as an update, per spec.md §4.7 — a part swap in the same slot,
// not a removal-then-addition.
func reconcileInventory(ctx context.Context, client *netbox.Client, deviceID int, desired []InventoryItemDesired, opts Options) (EntityResult, error) {
	result := EntityResult{EntityType: "inventory_item"}
	if deviceID == 0 {
		return result, nil
	}

	existingList, err := client.ListInventoryItems(ctx, deviceID)
	if err != nil {
		return result, err
	}
	existingByName := make(map[string]netbox.InventoryItemRecord, len(existingList))
	for _, e := range existingList {
		existingByName[strings.ToLower(e.Name)] = e
	}

	seen := make(map[string]bool)
	for _, d := range desired {
		key := strings.ToLower(d.Name)
		seen[key] = true

		manufacturerID := 0
		if d.Manufacturer != "" {
			mfg, err := client.EnsureManufacturer(ctx, d.Manufacturer, canon.Slug(d.Manufacturer))
			if err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			manufacturerID = mfg.ID
		}

		record := netbox.InventoryItemRecord{
			Device: deviceID, Name: d.Name, Manufacturer: manufacturerID,
			PartID: d.PartID, Serial: d.Serial, Description: d.Description,
		}

		existing, ok := existingByName[key]
		if !ok {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "inventory_item", Key: d.Name, Kind: diff.ChangeCreate})
			if opts.DryRun {
				continue
			}
			if _, err := client.CreateInventoryItem(ctx, record); err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			result.Applied++
			continue
		}

		fields := diff.CompareFields(
			map[string]interface{}{"part_id": existing.PartID, "serial": existing.Serial, "description": existing.Description},
			map[string]interface{}{"part_id": d.PartID, "serial": d.Serial, "description": d.Description},
			func(field string, a, b interface{}) bool { return toStr(a) == toStr(b) },
		)
		if len(fields) == 0 {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "inventory_item", Key: d.Name, Kind: diff.ChangeNone})
			continue
		}

		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "inventory_item", Key: d.Name, Kind: diff.ChangeUpdate, Fields: fields})
		if opts.DryRun {
			continue
		}
		if _, err := client.UpdateInventoryItem(ctx, existing.ID, record); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Applied++
	}

	if opts.DeleteStale {
		for name, existing := range existingByName {
			if seen[name] {
				continue
			}
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "inventory_item", Key: existing.Name, Kind: diff.ChangeDelete})
			if opts.DryRun {
				continue
			}
			if err := client.DeleteInventoryItem(ctx, existing.ID); err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			result.Applied++
		}
	}

	return result, nil
}
