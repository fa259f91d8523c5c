// Package normalize converts raw parser dictionaries into the uniform
// domain model (pkg/model), filling derived fields such as port type, LAG
// membership, switchport mode, and transceiver manufacturer. Normalizers
// never perform I/O (spec.md §4.3).
package normalize

import (
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
)

// rawInterface is the decode target for one parser.Row before canonicalization.
type rawInterface struct {
	Interface    string `mapstructure:"interface"`
	AdminState   string `mapstructure:"admin_state"`
	OperState    string `mapstructure:"oper_state"`
	Description  string `mapstructure:"description"`
	IPAddress    string `mapstructure:"ip_address"`
	PrefixLength string `mapstructure:"prefix_length"`
	MAC          string `mapstructure:"mac_address"`
	MTU          string `mapstructure:"mtu"`
	SpeedKbit    string `mapstructure:"speed_kbit"`
}

// LAGMembership maps a member interface's canonical long name (and every
// known alias) to its parent LAG name, as produced by the LAG enrichment
// command.
type LAGMembership map[string]string

// SwitchportInfo carries the administrative switchport mode recovered from
// the switchport enrichment command. The map holding it is keyed by the
// lowercased interface name (any alias spelling).
type SwitchportInfo struct {
	AdminMode     string
	TrunkingVLANs string
	AccessVLAN    int
}

// EnrichmentInputs bundles every optional secondary-command output a
// collector may supply (spec.md §4.4). Every map is keyed by a lowercased
// interface name; lookups try each alias of the interface, lowercased, so
// a key in mixed case never matches.
type EnrichmentInputs struct {
	LAG         LAGMembership
	Switchport  map[string]SwitchportInfo
	MediaType   map[string]string // lowercased name -> precise media type
	SpeedMbps   map[string]int    // lowercased name -> interface speed, when known out of band
}

// Interfaces normalizes primary interface rows, applying whatever
// enrichment inputs were collected, keyed by interface name via every
// known alias (a naive lookup misses vendor-specific aliases).
func Interfaces(rows []parser.Row, hostname, managementIP string, enrich EnrichmentInputs) []model.Interface {
	out := make([]model.Interface, 0, len(rows))
	for _, row := range rows {
		var raw rawInterface
		if err := mapstructure.Decode(map[string]interface{}(row), &raw); err != nil {
			continue
		}

		longName := canon.ToLongName(raw.Interface)
		iface := model.Interface{
			Hostname:     hostname,
			ManagementIP: managementIP,
			Name:         longName,
			ShortName:    canon.ToShortName(longName),
			AdminStatus:  raw.AdminState,
			OperStatus:   raw.OperState,
			Description:  raw.Description,
			IPAddress:    raw.IPAddress,
			MAC:          canon.NormalizeMAC(raw.MAC, canon.MACRaw),
		}
		iface.PrefixLength = canon.MaskToPrefixLength(raw.PrefixLength)
		iface.MTU = atoiOr(raw.MTU, 0)
		if speedKbit := atoiOr(raw.SpeedKbit, 0); speedKbit > 0 {
			iface.SpeedMbps = speedKbit / 1000
		}

		applyLAGMembership(&iface, enrich.LAG)
		applySwitchportMode(&iface, enrich.Switchport)
		applyMediaType(&iface, enrich.MediaType)
		if v, ok := lookupAlias(enrich.SpeedMbps, iface.Name); ok {
			iface.SpeedMbps = v
		}

		iface.PortType = canon.GetNetBoxInterfaceType(iface.Name, iface.MediaType, iface.PortType, iface.HardwareType, iface.SpeedMbps)

		out = append(out, iface)
	}
	return out
}

func applyLAGMembership(iface *model.Interface, lag LAGMembership) {
	if lag == nil {
		return
	}
	for _, alias := range canon.GetAliases(iface.Name) {
		if lagName, ok := lag[strings.ToLower(alias)]; ok {
			iface.LAG = lagName
			return
		}
	}
}

// BuildLAGMembership expands each parsed {member, lag_name} row's member
// interface into every known alias, so later lookups by any spelling
// succeed (spec.md §4.4).
func BuildLAGMembership(rows []parser.Row) LAGMembership {
	m := make(LAGMembership)
	for _, row := range rows {
		member, _ := row["member"].(string)
		lagName, _ := row["lag_name"].(string)
		if member == "" || lagName == "" {
			continue
		}
		canonical := canon.ToLongName(member)
		for _, alias := range canon.GetAliases(canonical) {
			m[strings.ToLower(alias)] = lagName
		}
	}
	return m
}

func applySwitchportMode(iface *model.Interface, info map[string]SwitchportInfo) {
	if info == nil {
		return
	}
	var sw SwitchportInfo
	var found bool
	for _, alias := range canon.GetAliases(iface.Name) {
		if v, ok := info[strings.ToLower(alias)]; ok {
			sw = v
			found = true
			break
		}
	}
	if !found {
		return
	}

	mode := strings.ToLower(strings.TrimSpace(sw.AdminMode))
	switch {
	case strings.Contains(mode, "trunk"):
		if isAllVLANs(sw.TrunkingVLANs) {
			iface.Mode = model.ModeTaggedAll
		} else {
			iface.Mode = model.ModeTagged
		}
		iface.TaggedVLANs = parseVLANList(sw.TrunkingVLANs)
	case strings.Contains(mode, "access"):
		iface.Mode = model.ModeAccess
		iface.UntaggedVLAN = sw.AccessVLAN
	default:
		iface.Mode = model.ModeUnset
	}
}

// isAllVLANs implements spec.md §4.4's set
// {"ALL", "", "1-4094", "1-4093", "1-4095"} (case-insensitive).
func isAllVLANs(vlans string) bool {
	switch strings.ToUpper(strings.TrimSpace(vlans)) {
	case "ALL", "", "1-4094", "1-4093", "1-4095":
		return true
	default:
		return false
	}
}

func parseVLANList(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" || isAllVLANs(s) {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.Atoi(part); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func applyMediaType(iface *model.Interface, media map[string]string) {
	if media == nil {
		return
	}
	for _, alias := range canon.GetAliases(iface.Name) {
		if v, ok := media[strings.ToLower(alias)]; ok && v != "" {
			// Enrichment only overwrites when the secondary source is
			// non-empty (spec.md §4.4).
			iface.MediaType = v
			return
		}
	}
}

func lookupAlias(m map[string]int, name string) (int, bool) {
	if m == nil {
		return 0, false
	}
	for _, alias := range canon.GetAliases(name) {
		if v, ok := m[strings.ToLower(alias)]; ok {
			return v, true
		}
	}
	return 0, false
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
