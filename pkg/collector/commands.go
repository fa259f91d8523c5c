// Package collector orchestrates, per device: primary command -> parse ->
// secondary enrichment commands -> normalize, per spec.md §4.4. One file
// per entity collector.
package collector

import "github.com/meridian-net/netcollector/pkg/session"

// commandTable is the closed per-dialect command lookup from spec.md §6.
// A missing entry for a dialect means that command (and any enrichment
// relying on it) is skipped for that platform.
var commandTable = map[string]map[session.Dialect]string{
	"version": {
		session.DialectIOSXE: "show version",
		session.DialectNXOS:  "show version",
		session.DialectEOS:   "show version",
		session.DialectJunOS: "show version",
	},
	"mac_table": {
		session.DialectIOSXE: "show mac address-table",
		session.DialectNXOS:  "show mac address-table",
		session.DialectEOS:   "show mac address-table",
	},
	"interfaces": {
		session.DialectIOSXE: "show interfaces",
		session.DialectNXOS:  "show interface",
		session.DialectEOS:   "show interfaces",
		session.DialectJunOS: "show interfaces",
	},
	"lldp": {
		session.DialectIOSXE: "show lldp neighbors detail",
		session.DialectNXOS:  "show lldp neighbors detail",
		session.DialectEOS:   "show lldp neighbors detail",
		session.DialectJunOS: "show lldp neighbors detail",
	},
	"cdp": {
		session.DialectIOSXE: "show cdp neighbors detail",
		session.DialectNXOS:  "show cdp neighbors detail",
	},
	"inventory": {
		session.DialectIOSXE: "show inventory",
		session.DialectNXOS:  "show inventory",
	},
	"lag": {
		session.DialectIOSXE: "show etherchannel summary",
		session.DialectNXOS:  "show port-channel summary",
		session.DialectEOS:   "show port-channel summary",
	},
	"switchport": {
		session.DialectIOSXE: "show interfaces switchport",
		session.DialectNXOS:  "show interface switchport",
		session.DialectEOS:   "show interfaces switchport",
	},
	"transceiver": {
		session.DialectNXOS: "show interface transceiver",
	},
	"interface_status": {
		session.DialectNXOS: "show interface status",
	},
	"running_config": {
		session.DialectIOSXE: "show running-config",
		session.DialectNXOS:  "show running-config",
		session.DialectEOS:   "show running-config",
		session.DialectJunOS: "show running-config",
	},
}

// commandFor looks up the closed per-platform command table. ok is false
// when the dialect has no entry for this logical command.
func commandFor(logical string, d session.Dialect) (string, bool) {
	byDialect, ok := commandTable[logical]
	if !ok {
		return "", false
	}
	cmd, ok := byDialect[d]
	return cmd, ok
}
