package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// "show version" is free-form prose that varies wildly across vendors, so
// this is regex-only; no vendor ships a machine-readable template for it.
var (
	reVersionIOSSoftware = regexp.MustCompile(`(?i)(?:Cisco IOS.*?Version|NX-OS.*?version|EOS[:]?\s*version)\s+([^\s,]+)`)
	reVersionJunOS        = regexp.MustCompile(`(?i)Junos:\s*([^\s\n]+)`)
	reVersionModel        = regexp.MustCompile(`(?im)^\s*(?:[Cc]isco\s+)?(\S+)\s+\(.*?\)\s+processor`)
	reVersionModelNXOS    = regexp.MustCompile(`(?i)cisco\s+(Nexus\s*\S+|N\dK-\S+)`)
	reVersionModelEOS     = regexp.MustCompile(`(?im)^\s*Arista\s+(\S+)`)
	reVersionSerial       = regexp.MustCompile(`(?i)[Pp]rocessor board ID\s+(\S+)|[Ss]erial [Nn]umber[:\s]+(\S+)`)
	reVersionUptime       = regexp.MustCompile(`(?i)uptime is\s+(.+)`)
)

func registerVersionParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS, session.DialectJunOS} {
		r.register(d, "show version", nil, parseVersionRegex)
	}
}

// parseVersionRegex recovers model/serial/software-version/uptime from
// "show version" prose. Fields that don't match for a given vendor are
// simply absent from the row; pkg/normalize fills in what it can.
func parseVersionRegex(output string) []Row {
	row := Row{}

	if m := reVersionIOSSoftware.FindStringSubmatch(output); m != nil {
		row["software_version"] = m[1]
	} else if m := reVersionJunOS.FindStringSubmatch(output); m != nil {
		row["software_version"] = m[1]
	}

	switch {
	case reVersionModelNXOS.MatchString(output):
		row["model"] = reVersionModelNXOS.FindStringSubmatch(output)[1]
	case reVersionModelEOS.MatchString(output):
		row["model"] = reVersionModelEOS.FindStringSubmatch(output)[1]
	default:
		if m := reVersionModel.FindStringSubmatch(output); m != nil {
			row["model"] = m[1]
		}
	}

	if m := reVersionSerial.FindStringSubmatch(output); m != nil {
		serial := m[1]
		if serial == "" {
			serial = m[2]
		}
		row["serial"] = strings.TrimSpace(serial)
	}

	if m := reVersionUptime.FindStringSubmatch(output); m != nil {
		row["uptime"] = strings.TrimSpace(m[1])
	}

	if len(row) == 0 {
		return nil
	}
	return []Row{row}
}
