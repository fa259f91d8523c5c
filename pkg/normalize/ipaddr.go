package normalize

import (
	"github.com/meridian-net/netcollector/pkg/model"
)

// IPAddresses derives IP-address entries directly from already-normalized
// interfaces, since the interface collector's primary command already
// carries the address (spec.md §3's IP address entry).
func IPAddresses(interfaces []model.Interface) []model.IPAddressEntry {
	var out []model.IPAddressEntry
	for _, iface := range interfaces {
		if iface.IPAddress == "" {
			continue
		}
		out = append(out, model.IPAddressEntry{
			Hostname:     iface.Hostname,
			Address:      iface.IPAddress,
			Interface:    iface.Name,
			PrefixLength: iface.PrefixLength,
		})
	}
	return out
}

// InventoryItemsFromTransceivers merges synthesized transceiver entries
// with `show inventory` items, matching spec.md §4.7's "Transceivers are
// merged with show inventory items before reconcile; no separate pass."
// Identity is (hostname, name); a transceiver entry never collides with a
// show-inventory entry because of the "Transceiver " name prefix.
func InventoryItemsFromTransceivers(inventory, transceivers []model.InventoryItem) []model.InventoryItem {
	return append(append([]model.InventoryItem{}, inventory...), transceivers...)
}
