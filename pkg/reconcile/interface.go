package reconcile

import (
	"context"
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/diff"
	"github.com/meridian-net/netcollector/pkg/netbox"
)

// InterfaceDesired is the collected/normalized state one interface should
// converge to.
type InterfaceDesired struct {
	Name         string `validate:"required"`
	Description  string
	Enabled      bool
	MAC          string
	MTU          int
	PortType     string
	Mode         string // "", "access", "tagged", "tagged-all"
	UntaggedVLAN int
	TaggedVLANs  []int
	LAGName      string
}

// reconcileInterfaces reconciles every interface for one device and
// returns a lowercased-name -> NetBox interface ID map so downstream IP
// and cable reconciliation can resolve assignments without a second
// round trip.
func reconcileInterfaces(ctx context.Context, client *netbox.Client, deviceID int, desired []InterfaceDesired, opts Options) (EntityResult, map[string]int, error) {
	result := EntityResult{EntityType: "interface"}
	ids := make(map[string]int)
	if deviceID == 0 {
		return result, ids, nil
	}

	existingList, err := client.ListInterfaces(ctx, deviceID)
	if err != nil {
		return result, ids, err
	}
	existingByName := make(map[string]netbox.InterfaceRecord, len(existingList))
	for _, e := range existingList {
		existingByName[strings.ToLower(e.Name)] = e
	}

	lagIDs := make(map[string]int)
	for _, d := range desired {
		if existing, ok := existingByName[strings.ToLower(d.Name)]; ok {
			if d.LAGName == "" {
				lagIDs[strings.ToLower(d.Name)] = existing.ID
			}
		}
	}

	seen := make(map[string]bool)
	for _, d := range desired {
		key := strings.ToLower(d.Name)
		seen[key] = true

		record := netbox.InterfaceRecord{
			Device:       deviceID,
			Name:         d.Name,
			Type:         d.PortType,
			Enabled:      d.Enabled,
			Description:  d.Description,
			MACAddress:   d.MAC,
			MTU:          d.MTU,
			Mode:         netBoxMode(d.Mode),
			UntaggedVLAN: d.UntaggedVLAN,
			TaggedVLANs:  d.TaggedVLANs,
		}
		if d.LAGName != "" {
			record.LAG = lagIDs[strings.ToLower(d.LAGName)]
		}

		existing, ok := existingByName[key]
		if !ok {
			change := diff.ObjectChange{EntityType: "interface", Key: d.Name, Kind: diff.ChangeCreate}
			result.Diff.Changes = append(result.Diff.Changes, change)
			if opts.DryRun {
				continue
			}
			created, err := client.CreateInterface(ctx, record)
			if err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			result.Applied++
			ids[key] = created.ID
			continue
		}

		ids[key] = existing.ID
		fields := diff.CompareFields(interfaceFieldMap(existing), desiredInterfaceFieldMap(record), interfaceFieldsEqual)
		fields, suppressed := suppressModeWithoutVLANs(fields, d)
		if len(fields) == 0 {
			if suppressed {
				result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{
					EntityType: "interface", Key: d.Name, Kind: diff.ChangeSkip,
					Reason: "switchport mode change without an accompanying VLAN list",
				})
			} else {
				result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "interface", Key: d.Name, Kind: diff.ChangeNone})
			}
			continue
		}

		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "interface", Key: d.Name, Kind: diff.ChangeUpdate, Fields: fields})
		if opts.DryRun {
			continue
		}
		if _, err := client.UpdateInterface(ctx, existing.ID, record); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Applied++
	}

	for name, existing := range existingByName {
		if seen[name] {
			continue
		}
		if !opts.DeleteStale {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{
				EntityType: "interface", Key: existing.Name, Kind: diff.ChangeSkip, Reason: "cleanup disabled",
			})
			continue
		}
		if !allowDeleteInterface(existing.Name) {
			result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{
				EntityType: "interface", Key: existing.Name, Kind: diff.ChangeSkip, Reason: "excluded by pattern",
			})
			continue
		}
		result.Diff.Changes = append(result.Diff.Changes, diff.ObjectChange{EntityType: "interface", Key: existing.Name, Kind: diff.ChangeDelete})
		if opts.DryRun {
			continue
		}
		if err := client.DeleteInterface(ctx, existing.ID); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Applied++
	}

	return result, ids, nil
}

// allowDeleteInterface implements spec.md §4.7's allow-delete pattern set
// for interfaces: an interface missing from the collected set is only a
// deletion candidate if it isn't an SVI, loopback, or management
// interface, since those commonly exist independent of physical
// discovery and a missed collection shouldn't remove them.
func allowDeleteInterface(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "vlan"):
		return false
	case strings.HasPrefix(lower, "loopback"):
		return false
	case strings.HasPrefix(lower, "mgmt"), strings.HasPrefix(lower, "management"):
		return false
	default:
		return true
	}
}

func netBoxMode(mode string) string {
	switch mode {
	case "access":
		return "access"
	case "tagged":
		return "tagged"
	case "tagged-all":
		return "tagged-all"
	default:
		return ""
	}
}

func interfaceFieldMap(r netbox.InterfaceRecord) map[string]interface{} {
	return map[string]interface{}{
		"type": r.Type, "enabled": r.Enabled, "description": r.Description,
		"mac_address": r.MACAddress, "mtu": r.MTU, "mode": r.Mode,
		"untagged_vlan": r.UntaggedVLAN,
	}
}

func desiredInterfaceFieldMap(r netbox.InterfaceRecord) map[string]interface{} {
	return interfaceFieldMap(r)
}

// interfaceFieldsEqual implements spec.md §4.7's "description empty
// string and missing field are equivalent" rule, and a case- and
// separator-insensitive MAC comparison (both sides reduced to canon's raw
// form).
func interfaceFieldsEqual(field string, a, b interface{}) bool {
	if field == "description" {
		return toStr(a) == toStr(b)
	}
	if field == "mac_address" {
		return canon.NormalizeMACRaw(toStr(a)) == canon.NormalizeMACRaw(toStr(b))
	}
	return a == b
}

func toStr(v interface{}) string {
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// suppressModeWithoutVLANs implements spec.md §4.7's rule that a
// switchport mode change is never applied on its own without an
// accompanying VLAN list — a mode-only change most often reflects a
// collection gap, not an intended change. It reports whether it
// suppressed anything so the caller can mark the entity ChangeSkip
// (with a reason) rather than silently folding it into ChangeNone.
func suppressModeWithoutVLANs(fields []diff.FieldChange, d InterfaceDesired) ([]diff.FieldChange, bool) {
	var modeChanged bool
	for _, f := range fields {
		if f.Field == "mode" {
			modeChanged = true
		}
	}
	if !modeChanged {
		return fields, false
	}
	if d.UntaggedVLAN != 0 || len(d.TaggedVLANs) > 0 {
		return fields, false
	}

	out := make([]diff.FieldChange, 0, len(fields))
	for _, f := range fields {
		if f.Field == "mode" || f.Field == "untagged_vlan" {
			continue
		}
		out = append(out, f)
	}
	return out, true
}
