package normalize

import (
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
)

// Neighbors normalizes LLDP/CDP neighbor rows into model.Neighbor.
func Neighbors(rows []parser.Row, hostname string, protocol model.DiscoveryProtocol) []model.Neighbor {
	out := make([]model.Neighbor, 0, len(rows))
	for _, row := range rows {
		n := model.Neighbor{
			Hostname:           hostname,
			LocalInterface:     canon.ToLongName(asString(row["local_interface"])),
			RemoteHostname:     asString(row["remote_hostname"]),
			RemotePortID:       asString(row["remote_port_id"]),
			RemoteChassisMAC:   canon.NormalizeMAC(asString(row["remote_chassis_mac"]), canon.MACRaw),
			RemoteManagementIP: asString(row["remote_management_ip"]),
			RemotePlatform:     asString(row["remote_platform"]),
			Protocol:           protocol,
		}
		if caps := asString(row["capabilities"]); caps != "" {
			for _, c := range strings.Split(caps, ",") {
				c = strings.TrimSpace(c)
				if c != "" {
					n.Capabilities = append(n.Capabilities, c)
				}
			}
		}
		n.NeighborType = classifyNeighborType(n)
		out = append(out, n)
	}
	return out
}

func classifyNeighborType(n model.Neighbor) model.NeighborType {
	switch {
	case n.RemoteHostname != "":
		return model.NeighborHostname
	case n.RemoteChassisMAC != "":
		return model.NeighborMAC
	case n.RemoteManagementIP != "":
		return model.NeighborIP
	default:
		return model.NeighborUnknown
	}
}
