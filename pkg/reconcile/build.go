// Package-level helpers converting freshly collected model records into
// the Desired shapes Run expects, applying field-policy gating along the
// way (spec.md §4.7 step 3: "the (optionally field-policy-filtered)
// collected records").
package reconcile

import (
	"strconv"
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/collector"
	"github.com/meridian-net/netcollector/pkg/fieldpolicy"
	"github.com/meridian-net/netcollector/pkg/model"
)

// BuildInput converts one device's collector.Result, plus its registry
// attributes, into a reconcile.Input. Cable candidates are left empty —
// they depend on the full fleet's neighbor data and are filled in by
// BuildCables once every device in the run has been collected.
func BuildInput(device model.Device, res collector.Result, policy *fieldpolicy.Table) Input {
	in := Input{
		Device: DeviceDesired{
			Name:         device.Name,
			Manufacturer: res.Info.Manufacturer,
			Model:        res.Info.Model,
			Role:         device.Role,
			Site:         device.Site,
			Platform:     string(device.Platform),
			Serial:       res.Info.Serial,
		},
	}

	for _, iface := range res.Interfaces {
		if !policy.IsEnabled("interface", "name") {
			continue
		}
		desired := InterfaceDesired{
			Name:         iface.Name,
			Enabled:      iface.AdminStatus == "up" || iface.AdminStatus == "",
			MAC:          iface.MAC,
			MTU:          iface.MTU,
			PortType:     canon.GetNetBoxInterfaceType(iface.Name, iface.MediaType, iface.PortType, iface.HardwareType, iface.SpeedMbps),
			Mode:         string(iface.Mode),
			UntaggedVLAN: iface.UntaggedVLAN,
			TaggedVLANs:  iface.TaggedVLANs,
			LAGName:      iface.LAG,
		}
		if policy.IsEnabled("interface", "description") {
			desired.Description = iface.Description
		}
		in.Interfaces = append(in.Interfaces, desired)

		if iface.IPAddress != "" && policy.IsEnabled("ip_address", "address") {
			in.IPAddresses = append(in.IPAddresses, IPAddressDesired{
				Address:   ipWithPrefix(iface.IPAddress, iface.PrefixLength),
				Interface: iface.Name,
			})
		}
		if iface.Mode == model.ModeTagged || iface.Mode == model.ModeTaggedAll {
			for _, vid := range iface.TaggedVLANs {
				in.VLANs = append(in.VLANs, VLANDesired{VID: vid, Name: "VLAN" + strconv.Itoa(vid), Site: device.Site})
			}
		}
		if iface.UntaggedVLAN > 0 {
			in.VLANs = append(in.VLANs, VLANDesired{VID: iface.UntaggedVLAN, Name: "VLAN" + strconv.Itoa(iface.UntaggedVLAN), Site: device.Site})
		}
	}

	for _, item := range res.Inventory {
		if !policy.IsEnabled("inventory_item", "name") {
			continue
		}
		in.Inventory = append(in.Inventory, InventoryItemDesired{
			Name:         item.Name,
			Manufacturer: item.Manufacturer,
			PartID:       item.PID,
			Serial:       item.Serial,
			Description:  item.Description,
		})
	}

	return in
}

func ipWithPrefix(address string, prefixLength int) string {
	if prefixLength <= 0 {
		return address + "/32"
	}
	return address + "/" + strconv.Itoa(prefixLength)
}

// BuildCables derives cable candidates from one device's neighbor list,
// resolving the remote endpoint against the fleet-wide interface-ID index
// built during this run. inScope reports whether a hostname was itself
// collected this run — a neighbor outside that set is returned with
// OtherDeviceInScope false (spec.md §4.7's "out of scope" cable rule), and
// reconcileCables neither creates nor deletes a cable for it.
func BuildCables(neighbors []model.Neighbor, fleetIfaceIDs map[string]map[string]int, inScope func(hostname string) bool) []CableDesired {
	var out []CableDesired
	for _, n := range neighbors {
		if n.RemoteHostname == "" || n.LocalInterface == "" {
			continue
		}
		remoteID := 0
		if byIface, ok := fleetIfaceIDs[strings.ToLower(n.RemoteHostname)]; ok {
			remoteID = byIface[strings.ToLower(canon.ToLongName(n.RemotePortID))]
		}
		out = append(out, CableDesired{
			LocalInterface:     n.LocalInterface,
			RemoteInterfaceID:  remoteID,
			OtherDeviceInScope: inScope(n.RemoteHostname),
		})
	}
	return out
}
