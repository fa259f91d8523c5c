package normalize

import (
	"strconv"
	"strings"

	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
)

// manufacturerForPlatform derives the device manufacturer from the
// platform dialect the session already negotiated, rather than trying to
// re-derive it from free-form "show version" prose a second time.
func manufacturerForPlatform(p model.Platform) string {
	switch p {
	case model.PlatformCiscoIOS, model.PlatformCiscoIOSXE, model.PlatformCiscoNXOS, model.PlatformCiscoIOSXR:
		return "Cisco"
	case model.PlatformAristaEOS:
		return "Arista"
	case model.PlatformJuniperJunOS:
		return "Juniper"
	case model.PlatformQTech, model.PlatformQTechQSW:
		return "QTech"
	default:
		return ""
	}
}

// DeviceInfo normalizes the single row "show version" parsing recovers
// into the catalog-level summary reconciled against device inventory.
func DeviceInfo(rows []parser.Row, hostname, managementIP string, platform model.Platform) model.DeviceInfo {
	info := model.DeviceInfo{
		Hostname:     hostname,
		ManagementIP: managementIP,
		Platform:     platform,
		Manufacturer: manufacturerForPlatform(platform),
		Status:       model.StatusOnline,
	}
	if len(rows) == 0 {
		return info
	}
	row := rows[0]
	info.Model = asString(row["model"])
	info.Serial = asString(row["serial"])
	info.SoftwareVersion = asString(row["software_version"])
	info.UptimeSeconds = parseUptime(asString(row["uptime"]))
	return info
}

// parseUptime converts Cisco/Arista/Junos-style "N years, N weeks, N days,
// N hours, N minutes" uptime prose into seconds. Unrecognized units are
// ignored rather than erroring, since this is cosmetic enrichment, not a
// field reconciled against inventory.
func parseUptime(s string) int64 {
	if s == "" {
		return 0
	}
	var total int64
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
	for _, f := range fields {
		f = strings.TrimSpace(f)
		parts := strings.Fields(f)
		if len(parts) != 2 {
			continue
		}
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		unit := strings.ToLower(strings.TrimSuffix(parts[1], "s"))
		switch unit {
		case "year":
			total += int64(n) * 365 * 24 * 3600
		case "week":
			total += int64(n) * 7 * 24 * 3600
		case "day":
			total += int64(n) * 24 * 3600
		case "hour":
			total += int64(n) * 3600
		case "minute", "min":
			total += int64(n) * 60
		}
	}
	return total
}
