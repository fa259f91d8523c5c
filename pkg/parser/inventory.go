package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// reInvName matches the NAME/DESCR line, reInvPID the PID/VID/SN line, of
// one "show inventory" stanza.
var (
	reInvName = regexp.MustCompile(`NAME:\s*"([^"]*)"\s*,\s*DESCR:\s*"([^"]*)"`)
	reInvPID  = regexp.MustCompile(`PID:\s*(\S*)\s*,\s*VID:\s*(\S*)\s*,\s*SN:\s*(\S*)`)
)

func registerInventoryParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS} {
		r.register(d, "show inventory", nil, parseInventoryRegex)
	}
	r.register(session.DialectNXOS, "show interface transceiver", nil, parseTransceiverRegex)
}

// parseInventoryRegex pairs each NAME/DESCR line with the PID/VID/SN line
// immediately following it, per Cisco's two-line-per-stanza "show
// inventory" layout.
func parseInventoryRegex(output string) []Row {
	lines := strings.Split(output, "\n")
	var rows []Row
	for i := 0; i < len(lines); i++ {
		nameMatch := reInvName.FindStringSubmatch(lines[i])
		if nameMatch == nil {
			continue
		}
		row := Row{"name": nameMatch[1], "description": nameMatch[2]}
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			if pidMatch := reInvPID.FindStringSubmatch(lines[j]); pidMatch != nil {
				row["pid"] = pidMatch[1]
				row["vid"] = pidMatch[2]
				row["serial"] = pidMatch[3]
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// The reTransceiver* patterns pick apart one stanza of "show interface
// transceiver": the interface name on the stanza's first line, then the
// type, vendor name, part number and serial number fields scattered across
// the lines that follow it.
var (
	reTransceiverIface  = regexp.MustCompile(`(?m)^(\S+)$`)
	reTransceiverType   = regexp.MustCompile(`type is\s+(.+)$`)
	reTransceiverVendor = regexp.MustCompile(`name is\s+(.+)$`)
	reTransceiverPN     = regexp.MustCompile(`part number is\s+(\S+)`)
	reTransceiverSN     = regexp.MustCompile(`serial number is\s+(\S+)`)
)

// parseTransceiverRegex recovers one row per interface stanza from "show
// interface transceiver" output.
func parseTransceiverRegex(output string) []Row {
	stanzas := strings.Split(output, "\n\n")
	var rows []Row
	for _, stanza := range stanzas {
		lines := strings.SplitN(strings.TrimSpace(stanza), "\n", 2)
		if len(lines) == 0 || lines[0] == "" {
			continue
		}
		ifaceMatch := reTransceiverIface.FindString(lines[0])
		if ifaceMatch == "" {
			continue
		}
		row := Row{"interface": strings.TrimSpace(ifaceMatch)}
		if m := reTransceiverType.FindStringSubmatch(stanza); m != nil {
			row["type"] = strings.TrimSpace(m[1])
		}
		if m := reTransceiverVendor.FindStringSubmatch(stanza); m != nil {
			row["vendor_name"] = strings.TrimSpace(m[1])
		}
		if m := reTransceiverPN.FindStringSubmatch(stanza); m != nil {
			row["part_number"] = m[1]
		}
		if m := reTransceiverSN.FindStringSubmatch(stanza); m != nil {
			row["serial_number"] = m[1]
		}
		rows = append(rows, row)
	}
	return rows
}
