package reconcile

import (
	"context"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// DeviceDesired is the collected/normalized state a device should
// converge to in NetBox.
type DeviceDesired struct {
	Name         string `validate:"required"`
	Manufacturer string `validate:"required"`
	Model        string `validate:"required"`
	Role         string `validate:"required"`
	Site         string `validate:"required"`
	Platform     string
	Serial       string
}

func reconcileDevice(ctx context.Context, client *netbox.Client, desired DeviceDesired, opts Options) (EntityResult, int, error) {
	result := EntityResult{EntityType: "device"}

	if err := validate.Struct(desired); err != nil {
		return result, 0, err
	}

	existing, err := client.GetDeviceByName(ctx, desired.Name)
	if err != nil {
		return result, 0, err
	}

	deviceTypeID, roleID, siteID, platformID, err := client.EnsureCatalog(ctx, desired.Manufacturer, desired.Site, desired.Role, desired.Platform, desired.Model, canon.Slug)
	if err != nil {
		return result, 0, err
	}

	desiredRecord := netbox.DeviceRecord{
		Name:       desired.Name,
		DeviceType: deviceTypeID,
		Role:       roleID,
		Site:       siteID,
		Platform:   platformID,
		Serial:     desired.Serial,
	}

	if existing == nil {
		change := diff.ObjectChange{EntityType: "device", Key: desired.Name, Kind: diff.ChangeCreate}
		result.Diff.Changes = append(result.Diff.Changes, change)
		if opts.DryRun {
			return result, 0, nil
		}
		created, err := client.CreateDevice(ctx, desiredRecord)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return result, 0, err
		}
		result.Applied++
		return result, created.ID, nil
	}

	fields := diff.CompareFields(
		map[string]interface{}{"device_type": existing.DeviceType, "role": existing.Role, "site": existing.Site, "platform": existing.Platform, "serial": existing.Serial},
		map[string]interface{}{"device_type": desiredRecord.DeviceType, "role": desiredRecord.Role, "site": desiredRecord.Site, "platform": desiredRecord.Platform, "serial": desiredRecord.Serial},
		nil,
	)
	if len(fields) == 0 {
		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "device", Key: desired.Name, Kind: diff.ChangeNone})
		return result, existing.ID, nil
	}

	result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "device", Key: desired.Name, Kind: diff.ChangeUpdate, Fields: fields})
	if opts.DryRun {
		return result, existing.ID, nil
	}
	if _, err := client.UpdateDevice(ctx, existing.ID, desiredRecord); err != nil {
		result.Errors = append(result.Errors, err)
		return result, existing.ID, err
	}
	result.Applied++
	return result, existing.ID, nil
}
