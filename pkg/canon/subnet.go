package canon

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	cidrman "github.com/EvilSuperstars/go-cidrman"
)

// DefaultPrefixLength is used when a mask cannot be determined.
const DefaultPrefixLength = 32

// MaskToPrefixLength accepts either a dotted mask ("255.255.255.0") or a
// numeric prefix length ("24") and returns the numeric prefix. Unparseable
// input returns DefaultPrefixLength.
func MaskToPrefixLength(mask string) int {
	mask = strings.TrimSpace(mask)
	if mask == "" {
		return DefaultPrefixLength
	}
	if n, err := strconv.Atoi(mask); err == nil {
		if n >= 0 && n <= 32 {
			return n
		}
		return DefaultPrefixLength
	}
	ip := net.ParseIP(mask)
	if ip == nil {
		return DefaultPrefixLength
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return DefaultPrefixLength
	}
	ones, bits := net.IPMask(ip4).Size()
	if bits == 0 {
		return DefaultPrefixLength
	}
	return ones
}

// WithPrefix renders the canonical CIDR string "address/prefix" for an
// address and a mask given in either dotted or numeric form.
func WithPrefix(address, mask string) string {
	prefix := MaskToPrefixLength(mask)
	return fmt.Sprintf("%s/%d", address, prefix)
}

// AggregateCIDRs merges a set of CIDR blocks into their minimal covering
// set. No reconciler or normalizer in this module calls it.
func AggregateCIDRs(cidrs []string) ([]string, error) {
	return cidrman.MergeCIDRs(cidrs)
}
