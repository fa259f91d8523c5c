package normalize

import (
	"strconv"
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
)

// macKeyAliases maps heterogeneous vendor key spellings to the canonical
// key the normalizer expects, per spec.md §4.3.
var macKeyAliases = map[string]string{
	"destination_address": "mac",
	"mac_address":          "mac",
	"mac":                  "mac",
	"vlan_id":              "vlan",
	"vlan":                 "vlan",
	"port":                 "interface",
	"interface":            "interface",
	"type":                 "learn_type",
	"learn_type":           "learn_type",
}

func canonicalRowKey(k string) string {
	if v, ok := macKeyAliases[strings.ToLower(k)]; ok {
		return v
	}
	return strings.ToLower(k)
}

// MACEntries normalizes MAC address table rows into model.MACEntry.
func MACEntries(rows []parser.Row, hostname, managementIP string) []model.MACEntry {
	out := make([]model.MACEntry, 0, len(rows))
	for _, row := range rows {
		canonical := make(map[string]interface{}, len(row))
		for k, v := range row {
			canonical[canonicalRowKey(k)] = v
		}

		mac := canon.NormalizeMAC(asString(canonical["mac"]), canon.MACRaw)
		if mac == "" {
			continue
		}

		entry := model.MACEntry{
			Hostname:     hostname,
			ManagementIP: managementIP,
			MAC:          mac,
			VLAN:         atoiOr(asString(canonical["vlan"]), 0),
			Interface:    canon.ToLongName(asString(canonical["interface"])),
			LearnType:    classifyLearnType(asString(canonical["learn_type"])),
		}
		out = append(out, entry)
	}
	return out
}

func classifyLearnType(raw string) model.MACLearnType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "static":
		return model.LearnStatic
	case "sticky":
		return model.LearnSticky
	default:
		return model.LearnDynamic
	}
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case nil:
		return ""
	default:
		return ""
	}
}
