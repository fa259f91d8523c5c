package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

var (
	reSwitchportBlock  = regexp.MustCompile(`(?m)^Name:\s*(\S+)`)
	reAdminMode        = regexp.MustCompile(`(?m)Administrative Mode:\s*(.+)$`)
	reOperMode         = regexp.MustCompile(`(?m)Operational Mode:\s*(.+)$`)
	reAccessVLAN       = regexp.MustCompile(`(?m)Access Mode VLAN:\s*(\d+)`)
	reTrunkingVLANs    = regexp.MustCompile(`(?m)Trunking VLANs Enabled:\s*(.+)$`)
)

func registerSwitchportParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS} {
		r.register(d, switchportCommand(d), nil, parseSwitchportModesRegex)
	}
}

func switchportCommand(d session.Dialect) string {
	switch d {
	case session.DialectNXOS:
		return "show interface switchport"
	default:
		return "show interfaces switchport"
	}
}

// parseSwitchportModesRegex splits "show interface(s) switchport" output
// into per-interface blocks and recovers administrative mode, access
// VLAN, and trunking VLAN list, grounded on
// network_collector/collectors/interfaces.py's _parse_switchport_modes_regex.
func parseSwitchportModesRegex(output string) []Row {
	headers := reSwitchportBlock.FindAllStringSubmatchIndex(output, -1)
	if len(headers) == 0 {
		return nil
	}

	var rows []Row
	for i, h := range headers {
		start := h[0]
		end := len(output)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		block := output[start:end]
		nameMatch := reSwitchportBlock.FindStringSubmatch(block)

		row := Row{"interface": nameMatch[1]}
		if m := reAdminMode.FindStringSubmatch(block); m != nil {
			row["admin_mode"] = strings.TrimSpace(m[1])
		}
		if m := reOperMode.FindStringSubmatch(block); m != nil {
			row["mode"] = strings.TrimSpace(m[1])
		}
		if m := reAccessVLAN.FindStringSubmatch(block); m != nil {
			row["access_vlan"] = m[1]
		}
		if m := reTrunkingVLANs.FindStringSubmatch(block); m != nil {
			row["trunking_vlans"] = strings.TrimSpace(m[1])
		}
		rows = append(rows, row)
	}
	return rows
}
