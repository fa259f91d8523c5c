package model

import "strconv"

// SwitchportMode enumerates the administrative switchport modes.
type SwitchportMode string

const (
	ModeAccess     SwitchportMode = "access"
	ModeTagged     SwitchportMode = "tagged"
	ModeTaggedAll  SwitchportMode = "tagged-all"
	ModeUnset      SwitchportMode = ""
)

// Interface is the primary output of the interface collector, per
// spec.md §3.
type Interface struct {
	// Hostname and ManagementIP are filled by the collector, never the
	// parser (spec.md §3 invariant).
	Hostname     string
	ManagementIP string

	Name         string // canonical long name
	ShortName    string // derived, never primary
	AdminStatus  string
	OperStatus   string
	Description  string
	IPAddress    string
	PrefixLength int
	MAC          string // canonical form
	SpeedMbps    int
	Duplex       string
	MTU          int

	Mode         SwitchportMode
	UntaggedVLAN int
	TaggedVLANs  []int

	PortType     string // normalized NetBox-style physical type
	MediaType    string // raw vendor transceiver string
	HardwareType string // raw vendor hardware-type line

	LAG string // parent LAG name, if this port is a bundle member
}

// MACLearnType enumerates how a MAC table entry was learned.
type MACLearnType string

const (
	LearnDynamic MACLearnType = "dynamic"
	LearnStatic  MACLearnType = "static"
	LearnSticky  MACLearnType = "sticky"
)

// MACEntry is one row of a device's MAC address table. Its uniqueness key
// within a device is (VLAN, MAC).
type MACEntry struct {
	Hostname     string
	ManagementIP string

	MAC       string // canonical form
	VLAN      int
	Interface string
	LearnType MACLearnType
}

// DiscoveryProtocol enumerates the neighbor-discovery protocol a neighbor
// record was learned from.
type DiscoveryProtocol string

const (
	DiscoveryLLDP DiscoveryProtocol = "lldp"
	DiscoveryCDP  DiscoveryProtocol = "cdp"
)

// NeighborType classifies how a neighbor is identified.
type NeighborType string

const (
	NeighborHostname NeighborType = "hostname"
	NeighborMAC      NeighborType = "mac"
	NeighborIP       NeighborType = "ip"
	NeighborUnknown  NeighborType = "unknown"
)

// Neighbor is an LLDP/CDP neighbor record.
type Neighbor struct {
	Hostname string // owning hostname

	LocalInterface    string
	RemoteHostname    string
	RemotePortID      string
	RemoteChassisMAC  string
	RemoteManagementIP string
	RemotePlatform    string
	Capabilities      []string
	Protocol          DiscoveryProtocol
	NeighborType      NeighborType
}

// InventoryItem is a hardware component reported by `show inventory` (or
// synthesized from transceiver enrichment — spec.md §4.4).
type InventoryItem struct {
	Hostname string

	Name         string
	Description  string
	PID          string
	VID          string
	Serial       string
	Manufacturer string // derived from PID
}

// IPAddressEntry is a single address assigned to an interface.
type IPAddressEntry struct {
	Hostname string

	Address      string
	Interface    string
	PrefixLength int
}

// WithPrefix renders the canonical CIDR string for this address.
func (e IPAddressEntry) WithPrefix() string {
	if e.PrefixLength <= 0 {
		return e.Address + "/32"
	}
	return e.Address + "/" + strconv.Itoa(e.PrefixLength)
}

// DeviceInfo is the catalog-level summary from `show version`.
type DeviceInfo struct {
	Hostname        string
	ManagementIP    string
	Platform        Platform
	Model           string
	Serial          string
	SoftwareVersion string
	UptimeSeconds   int64
	Manufacturer    string
	Status          DeviceStatus
}
