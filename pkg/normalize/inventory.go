package normalize

import (
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
)

// pidManufacturerPrefixes implements spec.md §4.4's PID-prefix derivation.
var pidManufacturerPrefixes = []struct {
	prefix       string
	manufacturer string
}{
	{"WS-", "Cisco"}, {"C9", "Cisco"}, {"N9K", "Cisco"}, {"N7K", "Cisco"},
	{"N5K", "Cisco"}, {"ISR", "Cisco"}, {"ASR", "Cisco"}, {"SFP-", "Cisco"},
	{"GLC-", "Cisco"}, {"XENPAK", "Cisco"},
	{"DCS-", "Arista"}, {"ARISTA", "Arista"},
	{"EX", "Juniper"}, {"QFX", "Juniper"}, {"MX", "Juniper"},
	{"FINISAR", "Finisar"}, {"FTLX", "Finisar"},
	{"INTEL", "Intel"},
}

// manufacturerFromPID derives a manufacturer from a PID prefix. Unknown
// prefixes yield an empty manufacturer, not a guess (spec.md §4.4).
func manufacturerFromPID(pid string) string {
	upper := strings.ToUpper(pid)
	for _, m := range pidManufacturerPrefixes {
		if strings.HasPrefix(upper, m.prefix) {
			return m.manufacturer
		}
	}
	return ""
}

// manufacturerFromTransceiverName derives a manufacturer for a
// transceiver inventory item, where the vendor-reported name takes
// precedence over the PID (spec.md §4.4).
func manufacturerFromTransceiverName(name, pid string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(upper, "CISCO"):
		return "Cisco"
	case upper == "FINISAR":
		return "Finisar"
	case upper == "OEM":
		return "" // unknown manufacturer, not Cisco/OEM brand
	case upper != "":
		return manufacturerFromPID(pid)
	default:
		return manufacturerFromPID(pid)
	}
}

// InventoryItems normalizes "show inventory" rows.
func InventoryItems(rows []parser.Row, hostname string) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		pid := asString(row["pid"])
		item := model.InventoryItem{
			Hostname:     hostname,
			Name:         asString(row["name"]),
			Description:  asString(row["description"]),
			PID:          pid,
			VID:          asString(row["vid"]),
			Serial:       asString(row["serial"]),
			Manufacturer: manufacturerFromPID(pid),
		}
		out = append(out, item)
	}
	return out
}

// TransceiverInventoryItems synthesizes inventory items from
// "show interface transceiver" rows (spec.md §4.4): name
// "Transceiver <interface>", description = type string, pid = part
// number, serial = serial number, manufacturer from the name-plus-pid
// heuristic. Entries whose type is empty or "not present" are discarded.
func TransceiverInventoryItems(rows []parser.Row, hostname string) []model.InventoryItem {
	var out []model.InventoryItem
	for _, row := range rows {
		typ := strings.TrimSpace(asString(row["type"]))
		if typ == "" || strings.EqualFold(typ, "not present") {
			continue
		}
		iface := canon.ToLongName(asString(row["interface"]))
		pid := asString(row["part_number"])
		out = append(out, model.InventoryItem{
			Hostname:     hostname,
			Name:         "Transceiver " + iface,
			Description:  typ,
			PID:          pid,
			Serial:       asString(row["serial_number"]),
			Manufacturer: manufacturerFromTransceiverName(asString(row["vendor_name"]), pid),
		})
	}
	return out
}
