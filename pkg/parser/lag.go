package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// reLAGGroup matches a port-channel/etherchannel/aggregate-port summary
// line followed by an indented member list, e.g.:
//
//	1      Po1(SU)         LACP      Gi0/1(P) Gi0/2(P)
var reLAGGroup = regexp.MustCompile(`(?m)^\s*\d+\s+(\S+)\([A-Za-z]+\)\s+\S+\s+(.+)$`)
var reLAGMember = regexp.MustCompile(`([A-Za-z][A-Za-z0-9/.\-]*?)\(\S+\)`)

func registerLAGParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS} {
		r.register(d, lagCommand(d), nil, parseLAGMembershipRegex)
	}
}

func lagCommand(d session.Dialect) string {
	switch d {
	case session.DialectNXOS:
		return "show port-channel summary"
	case session.DialectEOS:
		return "show port-channel summary"
	default:
		return "show etherchannel summary"
	}
}

// parseLAGMembershipRegex recovers {member interface -> lag name} rows
// from an etherchannel/port-channel/aggregate-port summary, grounded on
// network_collector/collectors/interfaces.py's _parse_lag_membership_regex.
func parseLAGMembershipRegex(output string) []Row {
	var rows []Row
	for _, line := range strings.Split(output, "\n") {
		m := reLAGGroup.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lagName := m[1]
		members := reLAGMember.FindAllStringSubmatch(m[2], -1)
		for _, mem := range members {
			rows = append(rows, Row{
				"member":    mem[1],
				"lag_name":  lagName,
			})
		}
	}
	return rows
}
