package parser

import (
	"regexp"
	"strings"

	"github.com/meridian-net/netcollector/pkg/session"
)

// LLDP "show lldp neighbors detail" fields, one block per neighbor starting
// at each "Local Intf:" line.
var (
	reLLDPLocalIntf = regexp.MustCompile(`(?m)^Local (?:Intf|Port id):\s*(.+)$`)
	reLLDPSysName   = regexp.MustCompile(`(?m)^System Name:\s*(.+)$`)
	reLLDPPortID    = regexp.MustCompile(`(?m)^Port id:\s*(.+)$`)
	reLLDPChassis   = regexp.MustCompile(`(?i)Chassis id:\s*([0-9a-fA-F]{4}[.:][0-9a-fA-F]{4}[.:][0-9a-fA-F]{4})`)
	reLLDPMgmtAddr  = regexp.MustCompile(`(?m)^Management Address:\s*(.+)$`)
	reLLDPCaps      = regexp.MustCompile(`(?m)^(?:Enabled )?Capabilities:\s*(.+)$`)
	reLLDPPlatform  = regexp.MustCompile(`(?m)^System Description:\s*(.+)$`)
)

// CDP "show cdp neighbors detail" fields, one block per neighbor separated
// by a line of dashes.
var (
	reCDPDeviceID  = regexp.MustCompile(`(?m)^Device ID:\s*(.+)$`)
	reCDPIface     = regexp.MustCompile(`(?m)^Interface:\s*(\S+),`)
	reCDPPortID    = regexp.MustCompile(`Port ID \(outgoing port\):\s*(\S+)`)
	reCDPIP        = regexp.MustCompile(`IP address:\s*([\d.]+)`)
	reCDPPlatform  = regexp.MustCompile(`(?m)^Platform:\s*([^,]+),`)
	reCDPCaps      = regexp.MustCompile(`Capabilities:\s*(.+)$`)
)

func registerNeighborParsers(r *Registry) {
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS, session.DialectEOS, session.DialectJunOS} {
		r.register(d, "show lldp neighbors detail", nil, parseLLDPDetailRegex)
	}
	for _, d := range []session.Dialect{session.DialectIOSXE, session.DialectNXOS} {
		r.register(d, "show cdp neighbors detail", nil, parseCDPDetailRegex)
	}
}

// parseLLDPDetailRegex splits on each "Local Intf:"/"Local Port id:" marker
// and recovers the remote identity fields from that block.
func parseLLDPDetailRegex(output string) []Row {
	starts := reLLDPLocalIntf.FindAllStringSubmatchIndex(output, -1)
	if len(starts) == 0 {
		return nil
	}
	var rows []Row
	for i, s := range starts {
		start := s[0]
		end := len(output)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := output[start:end]
		row := Row{"local_interface": strings.TrimSpace(output[s[2]:s[3]])}
		if m := reLLDPSysName.FindStringSubmatch(block); m != nil {
			row["remote_hostname"] = strings.TrimSpace(m[1])
		}
		if m := reLLDPPortID.FindStringSubmatch(block); m != nil {
			row["remote_port_id"] = strings.TrimSpace(m[1])
		}
		if m := reLLDPChassis.FindStringSubmatch(block); m != nil {
			row["remote_chassis_mac"] = m[1]
		}
		if m := reLLDPMgmtAddr.FindStringSubmatch(block); m != nil {
			row["remote_management_ip"] = strings.TrimSpace(m[1])
		}
		if m := reLLDPPlatform.FindStringSubmatch(block); m != nil {
			row["remote_platform"] = strings.TrimSpace(m[1])
		}
		if m := reLLDPCaps.FindStringSubmatch(block); m != nil {
			row["capabilities"] = strings.TrimSpace(m[1])
		}
		rows = append(rows, row)
	}
	return rows
}

// parseCDPDetailRegex splits on dashed separator lines between neighbor
// entries and recovers the remote identity fields from each block.
func parseCDPDetailRegex(output string) []Row {
	blocks := strings.Split(output, "-------------------------")
	var rows []Row
	for _, block := range blocks {
		devID := reCDPDeviceID.FindStringSubmatch(block)
		if devID == nil {
			continue
		}
		row := Row{"remote_hostname": strings.TrimSpace(devID[1])}
		if m := reCDPIface.FindStringSubmatch(block); m != nil {
			row["local_interface"] = m[1]
		}
		if m := reCDPPortID.FindStringSubmatch(block); m != nil {
			row["remote_port_id"] = m[1]
		}
		if m := reCDPIP.FindStringSubmatch(block); m != nil {
			row["remote_management_ip"] = m[1]
		}
		if m := reCDPPlatform.FindStringSubmatch(block); m != nil {
			row["remote_platform"] = strings.TrimSpace(m[1])
		}
		if m := reCDPCaps.FindStringSubmatch(block); m != nil {
			row["capabilities"] = strings.TrimSpace(m[1])
		}
		rows = append(rows, row)
	}
	return rows
}
