// Package canon provides pure identifier canonicalization used across the
// parser, normalizer, and reconciler layers: MAC addresses, interface
// names, NetBox physical types, slugs, and subnet masks.
package canon

import "strings"

// MACFormat selects one of the five canonical MAC string renderings.
type MACFormat string

const (
	MACRaw    MACFormat = "raw"
	MACIEEE   MACFormat = "ieee"
	MACNetbox MACFormat = "netbox"
	MACCisco  MACFormat = "cisco"
	MACUnix   MACFormat = "unix"
)

// NormalizeMACRaw strips separators (":", "-", ".", " ") and lowercases the
// result. A valid MAC has exactly 12 hex characters after stripping;
// anything else normalizes to the empty string.
func NormalizeMACRaw(mac string) string {
	var b strings.Builder
	b.Grow(len(mac))
	for _, r := range mac {
		switch r {
		case ':', '-', '.', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}
	raw := strings.ToLower(b.String())
	if len(raw) != 12 {
		return ""
	}
	for _, r := range raw {
		if !isHex(r) {
			return ""
		}
	}
	return raw
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

// FormatMACIEEE renders "aa:bb:cc:dd:ee:ff" from a raw 12-char form.
func FormatMACIEEE(raw string) string {
	return joinPairs(raw, ":", false)
}

// FormatMACNetbox renders "AA:BB:CC:DD:EE:FF" from a raw 12-char form.
func FormatMACNetbox(raw string) string {
	return joinPairs(raw, ":", true)
}

// FormatMACCisco renders "aabb.ccdd.eeff" from a raw 12-char form.
func FormatMACCisco(raw string) string {
	if len(raw) != 12 {
		return ""
	}
	return raw[0:4] + "." + raw[4:8] + "." + raw[8:12]
}

// FormatMACUnix renders "aa-bb-cc-dd-ee-ff" from a raw 12-char form.
func FormatMACUnix(raw string) string {
	return joinPairs(raw, "-", false)
}

func joinPairs(raw, sep string, upper bool) string {
	if len(raw) != 12 {
		return ""
	}
	if upper {
		raw = strings.ToUpper(raw)
	}
	parts := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		parts = append(parts, raw[i:i+2])
	}
	return strings.Join(parts, sep)
}

// NormalizeMAC normalizes mac and renders it in the requested format.
// Returns "" if mac is not a valid MAC address.
func NormalizeMAC(mac string, format MACFormat) string {
	raw := NormalizeMACRaw(mac)
	if raw == "" {
		return ""
	}
	switch format {
	case MACIEEE:
		return FormatMACIEEE(raw)
	case MACNetbox:
		return FormatMACNetbox(raw)
	case MACCisco:
		return FormatMACCisco(raw)
	case MACUnix:
		return FormatMACUnix(raw)
	default:
		return raw
	}
}

// IsValidMAC reports whether mac normalizes to a valid raw form.
func IsValidMAC(mac string) bool {
	return NormalizeMACRaw(mac) != ""
}
