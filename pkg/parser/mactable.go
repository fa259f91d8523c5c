package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// reMACRow matches one MAC address table data row across IOS-XE, NX-OS and
// EOS dialects. The columns are VLAN, MAC address, type, and (skipping any
// age/secure/notify columns NX-OS inserts) a trailing port/interface token.
var reMACRow = regexp.MustCompile(`(?m)^\*?\s*(\d+)\s+([0-9a-fA-F]{4}[.:][0-9a-fA-F]{4}[.:][0-9a-fA-F]{4})\s+(\S+)\s+.*?(\S+)\s*$`)

func registerMACTableParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS} {
		r.register(d, macTableCommand(d), nil, parseMACTableRegex)
	}
}

func macTableCommand(d session.Dialect) string {
	return "show mac address-table"
}

// parseMACTableRegex recovers vlan/mac/type/port rows, skipping header and
// separator lines that don't match the data-row shape.
func parseMACTableRegex(output string) []Row {
	var rows []Row
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "----") || strings.Contains(strings.ToLower(line), "mac address") {
			continue
		}
		m := reMACRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rows = append(rows, Row{
			"vlan":       m[1],
			"mac":        m[2],
			"learn_type": m[3],
			"interface":  m[4],
		})
	}
	return rows
}
