package canon

import (
	"regexp"
	"sort"
	"strings"
)

// shortToLong maps a lowercase short prefix to its canonical long form.
// Some short prefixes have more than one long spelling in the wild
// (e.g. "Hu" is used for both "HundredGigE" and "HundredGigabitEthernet");
// the first entry is the canonical long form used as the primary spelling,
// the rest are recognized as aliases only.
var shortToLong = map[string][]string{
	"gi":  {"GigabitEthernet"},
	"te":  {"TenGigabitEthernet"},
	"twe": {"TwentyFiveGigE", "TwentyFiveGigabitEthernet"},
	"hu":  {"HundredGigE", "HundredGigabitEthernet"},
	"fo":  {"FortyGigabitEthernet"},
	"eth": {"Ethernet"},
	"fa":  {"FastEthernet"},
	"tf":  {"TFGigabitEthernet"},
	"ag":  {"AggregatePort"},
	"po":  {"Port-channel"},
}

// longToShort is the reverse of shortToLong's primary spellings, built once.
var longToShort map[string]string

// allLongForms lists every recognized long spelling (primary + alias),
// lowercased, mapped back to its short prefix.
var allLongForms map[string]string

// passthroughPrefixes are long-form names with no short alias of their own.
var passthroughPrefixes = []string{"vlan", "loopback"}

var numericSuffix = regexp.MustCompile(`^([A-Za-z][A-Za-z -]*?)\s*([0-9][0-9/.:]*)$`)

func init() {
	longToShort = make(map[string]string)
	allLongForms = make(map[string]string)
	for short, longs := range shortToLong {
		longToShort[strings.ToLower(longs[0])] = short
		for _, l := range longs {
			allLongForms[strings.ToLower(l)] = short
		}
	}
}

func splitPrefix(name string) (prefix, suffix string) {
	m := numericSuffix.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return strings.TrimSpace(name), ""
	}
	return m[1], m[2]
}

func titleCase(prefix string) string {
	// Reconstruct the registered display casing from its lowercase key.
	for short, longs := range shortToLong {
		if strings.ToLower(longs[0]) == strings.ToLower(prefix) {
			return longs[0]
		}
		for _, l := range longs {
			if strings.ToLower(l) == strings.ToLower(prefix) {
				return l
			}
		}
		_ = short
	}
	for _, p := range passthroughPrefixes {
		if p == strings.ToLower(prefix) {
			return strings.ToUpper(prefix[:1]) + prefix[1:]
		}
	}
	return prefix
}

// ToLongName resolves any recognized spelling of an interface name
// (short alias, vendor alias, or already-long) to its canonical long form.
// Unrecognized prefixes are returned unchanged (the caller may still want
// the original raw text for platforms outside the closed alias table).
func ToLongName(name string) string {
	prefix, suffix := splitPrefix(name)
	lower := strings.ToLower(prefix)

	if long, ok := shortToLong[lower]; ok {
		return joinPrefixSuffix(long[0], suffix)
	}
	if _, ok := allLongForms[lower]; ok {
		return joinPrefixSuffix(titleCase(prefix), suffix)
	}
	for _, p := range passthroughPrefixes {
		if p == lower {
			return joinPrefixSuffix(titleCase(prefix), suffix)
		}
	}
	return name
}

// ToShortName derives the conventional abbreviation of a canonical long
// interface name. Names with no registered short form are returned
// unchanged (e.g. "Vlan100", "Loopback0").
func ToShortName(name string) string {
	prefix, suffix := splitPrefix(name)
	lower := strings.ToLower(prefix)

	if short, ok := allLongForms[lower]; ok {
		return joinPrefixSuffix(strings.ToUpper(short[:1])+short[1:], suffix)
	}
	return name
}

func joinPrefixSuffix(prefix, suffix string) string {
	if suffix == "" {
		return prefix
	}
	return prefix + suffix
}

// GetAliases returns every known spelling of name: its long canonical form,
// its short alias, any alternate long spellings registered for the same
// prefix, and the vendor variant that inserts a space between the prefix
// and the numeric part (QTech style). Lookup is case-insensitive.
func GetAliases(name string) []string {
	prefix, suffix := splitPrefix(name)
	lower := strings.ToLower(prefix)

	seen := map[string]struct{}{}
	var out []string
	add := func(s string) {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	add(name)

	var short string
	var longs []string
	if s, ok := allLongForms[lower]; ok {
		short = s
		longs = shortToLong[s]
	} else if l, ok := shortToLong[lower]; ok {
		short = lower
		longs = l
	}

	if short != "" {
		shortDisplay := strings.ToUpper(short[:1]) + short[1:]
		add(joinPrefixSuffix(shortDisplay, suffix))
		for _, l := range longs {
			add(joinPrefixSuffix(l, suffix))
			if suffix != "" {
				add(l + " " + suffix) // QTech-style spaced variant
			}
		}
	} else {
		add(joinPrefixSuffix(titleCase(prefix), suffix))
	}

	sort.Strings(out)
	return out
}
