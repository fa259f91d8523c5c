package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// Primary interface-status line regexes, grounded on
// network_collector/collectors/interfaces.py's _parse_with_regex_raw.
// These are deliberately permissive: the regex fallback only needs to
// recover the minimum fields (spec.md §4.3), not every attribute a
// template would.
var (
	reIfaceHeader = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9/.\-]*?)\s+is\s+(administratively\s+down|up|down),?\s*line protocol is\s+(up|down)`)
	reIfaceDesc   = regexp.MustCompile(`(?m)^\s*Description:\s*(.+)$`)
	reIfaceIP     = regexp.MustCompile(`(?m)Internet address is\s+([\d.]+)/(\d+)`)
	reIfaceMAC    = regexp.MustCompile(`(?i)address is\s+([0-9a-f]{4}\.[0-9a-f]{4}\.[0-9a-f]{4})`)
	reIfaceMTU    = regexp.MustCompile(`MTU\s+(\d+)\s+bytes`)
	reIfaceSpeed  = regexp.MustCompile(`(?i)BW\s+(\d+)\s+Kbit`)
)

func registerInterfaceParsers(r *Registry) {
	regex := parseInterfacesRegex
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS, session.DialectJunOS} {
		r.register(d, interfacesCommand(d), nil, regex)
	}
}

func interfacesCommand(d session.Dialect) string {
	switch d {
	case session.DialectNXOS:
		return "show interface"
	case session.DialectJunOS:
		return "show interfaces"
	default:
		return "show interfaces"
	}
}

// parseInterfacesRegex splits "show interface(s)" output into per-interface
// blocks on the header line, then recovers description/IP/MAC/MTU/speed
// from each block independently.
func parseInterfacesRegex(output string) []Row {
	headers := reIfaceHeader.FindAllStringSubmatchIndex(output, -1)
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
		m := reIfaceHeader.FindStringSubmatch(block)

		row := Row{
			"interface":   strings.TrimSpace(m[1]),
			"admin_state": normalizeAdminState(m[2]),
			"oper_state":  m[3],
		}
		if dm := reIfaceDesc.FindStringSubmatch(block); dm != nil {
			row["description"] = strings.TrimSpace(dm[1])
		}
		if im := reIfaceIP.FindStringSubmatch(block); im != nil {
			row["ip_address"] = im[1]
			row["prefix_length"] = im[2]
		}
		if mm := reIfaceMAC.FindStringSubmatch(block); mm != nil {
			row["mac_address"] = mm[1]
		}
		if mt := reIfaceMTU.FindStringSubmatch(block); mt != nil {
			row["mtu"] = mt[1]
		}
		if sp := reIfaceSpeed.FindStringSubmatch(block); sp != nil {
			row["speed_kbit"] = sp[1]
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeAdminState(s string) string {
	if strings.Contains(strings.ToLower(s), "administratively down") {
		return "down"
	}
	return s
}
