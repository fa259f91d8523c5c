package canon

import "strings"

// DefaultInterfaceType is returned when no other signal resolves a type.
const DefaultInterfaceType = "1000base-t"

// mediaTypeMap maps a lowercased transceiver media-type string (or a
// substring of it) to a NetBox physical interface type. Lookup is
// substring-based against the lowercased input; entries are tried in
// order and the first match wins, so each specific key is listed before
// its generic prefix.
var mediaTypeMap = []struct {
	substr string
	typ    string
}{
	{"10gbase-lr", "10gbase-lr"},
	{"10gbase-sr", "10gbase-sr"},
	{"10gbase-cu", "10gbase-cu"},
	{"10gbase", "10gbase-x-sfpp"},
	{"25gbase-lr", "25gbase-lr"},
	{"25gbase-sr", "25gbase-sr"},
	{"25gbase", "25gbase-x-sfp28"},
	{"40gbase-sr4", "40gbase-x-qsfpp"},
	{"40gbase", "40gbase-x-qsfpp"},
	{"100gbase-sr4", "100gbase-x-qsfp28"},
	{"100gbase", "100gbase-x-qsfp28"},
	{"1000base-t", "1000base-t"},
	{"1000base-sx", "1000base-x-sfp"},
	{"1000base-lx", "1000base-x-sfp"},
	{"1000base", "1000base-x-sfp"},
}

var invalidMediaTypes = map[string]struct{}{
	"":            {},
	"unknown":     {},
	"not present": {},
}

// GetNetBoxInterfaceType resolves the NetBox physical interface type for a
// collected interface, following the load-bearing priority order from
// spec.md §4.1:
//
//  1. mediaType (the transceiver string), unless it is a sentinel value.
//  2. portType (already-normalized physical type).
//  3. hardwareType (raw vendor hardware-type line).
//  4. speedMbps combined with the interface name prefix, as a last resort.
//  5. DefaultInterfaceType.
func GetNetBoxInterfaceType(name, mediaType, portType, hardwareType string, speedMbps int) string {
	if t, ok := resolveFromMediaType(mediaType); ok {
		return t
	}
	if strings.TrimSpace(portType) != "" {
		return portType
	}
	if t, ok := resolveFromMediaType(hardwareType); ok {
		return t
	}
	if t, ok := resolveFromSpeed(name, speedMbps); ok {
		return t
	}
	return DefaultInterfaceType
}

func resolveFromMediaType(s string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if _, invalid := invalidMediaTypes[lower]; invalid {
		return "", false
	}
	for _, m := range mediaTypeMap {
		if strings.Contains(lower, m.substr) {
			return m.typ, true
		}
	}
	return "", false
}

func resolveFromSpeed(name string, speedMbps int) (string, bool) {
	if speedMbps <= 0 {
		return "", false
	}
	prefix, _ := splitPrefix(name)
	lower := strings.ToLower(prefix)

	switch {
	case speedMbps >= 100000:
		return "100gbase-x-qsfp28", true
	case speedMbps >= 40000:
		return "40gbase-x-qsfpp", true
	case speedMbps >= 25000:
		return "25gbase-x-sfp28", true
	case speedMbps >= 10000:
		return "10gbase-x-sfpp", true
	case speedMbps >= 1000:
		if lower == "vlan" || lower == "po" || lower == "port-channel" {
			return "lag", true
		}
		return "1000base-t", true
	default:
		return "100base-tx", true
	}
}
