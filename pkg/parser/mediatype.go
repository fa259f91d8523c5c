package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// reStatusLine matches one row of NX-OS "show interface status":
//
//	Eth1/1        server1     connected 100   full    10G     10Gbase-LR
var reStatusLine = regexp.MustCompile(`(?m)^(\S+)\s+.{0,30}?\s+(connected|notconnec|disabled|xcvrAbsen)\s+\S+\s+\S+\s+(\S+)\s+(\S.*)$`)

func registerMediaTypeParsers(r *Registry) {
	r.register(session.DialectNXOS, "show interface status", nil, parseMediaTypesRegex)
}

// parseMediaTypesRegex recovers the exact optic type from the Type column
// of "show interface status", one row per interface under the name as the
// device printed it; the collector registers the other alias spellings
// (grounded on
// network_collector/collectors/interfaces.py's _parse_media_types).
func parseMediaTypesRegex(output string) []Row {
	var rows []Row
	for _, line := range strings.Split(output, "\n") {
		m := reStatusLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		mediaType := strings.TrimSpace(m[4])
		if mediaType == "" || strings.EqualFold(mediaType, "--") {
			continue
		}
		rows = append(rows, Row{
			"interface":  m[1],
			"media_type": mediaType,
		})
	}
	return rows
}
