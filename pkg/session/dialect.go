package session

import "github.com/meridian-net/netcollector/pkg/model"

// Dialect is the underlying command dialect a platform speaks. Several
// platform tags collapse onto the same dialect (spec.md §4.2).
type Dialect string

const (
	DialectIOSXE Dialect = "iosxe"
	DialectNXOS  Dialect = "nxos"
	DialectEOS   Dialect = "eos"
	DialectJunOS Dialect = "junos"
)

// platformDialect is the closed mapping from platform tag to dialect.
// Unknown platforms fall back to DialectIOSXE.
var platformDialect = map[model.Platform]Dialect{
	model.PlatformCiscoIOS:     DialectIOSXE,
	model.PlatformCiscoIOSXE:   DialectIOSXE,
	model.PlatformCiscoIOSXR:   DialectIOSXE,
	model.PlatformCiscoNXOS:    DialectNXOS,
	model.PlatformAristaEOS:    DialectEOS,
	model.PlatformJuniperJunOS: DialectJunOS,
	model.PlatformQTech:        DialectIOSXE,
	model.PlatformQTechQSW:     DialectIOSXE,
}

// DialectFor resolves the command dialect for a platform tag.
func DialectFor(p model.Platform) Dialect {
	if d, ok := platformDialect[p]; ok {
		return d
	}
	return DialectIOSXE
}

// disablePagingCommand returns the command that disables interactive
// paging for a dialect, sent once right after privileged mode is entered.
func disablePagingCommand(d Dialect) string {
	switch d {
	case DialectNXOS, DialectEOS:
		return "terminal length 0"
	case DialectJunOS:
		return "set cli screen-length 0"
	default:
		return "terminal length 0"
	}
}
