package netbox

import (
	"context"
	"strconv"
)

// InterfaceRecord is the NetBox dcim.Interface shape.
type InterfaceRecord struct {
	ID          int    `json:"id,omitempty"`
	Device      int    `json:"device"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
	MACAddress  string `json:"mac_address,omitempty"`
	MTU         int    `json:"mtu,omitempty"`
	Mode        string `json:"mode,omitempty"`
	LAG         int    `json:"lag,omitempty"`
	TaggedVLANs []int  `json:"tagged_vlans,omitempty"`
	UntaggedVLAN int   `json:"untagged_vlan,omitempty"`
}

// ListInterfaces returns every interface belonging to deviceID.
func (c *Client) ListInterfaces(ctx context.Context, deviceID int) ([]InterfaceRecord, error) {
	return listAll[InterfaceRecord](ctx, c, "/dcim/interfaces/", ListParams{Limit: 500, Extra: map[string]string{"device_id": strconv.Itoa(deviceID)}})
}

// CreateInterface creates a new interface record.
func (c *Client) CreateInterface(ctx context.Context, i InterfaceRecord) (*InterfaceRecord, error) {
	return create[InterfaceRecord](ctx, c, "/dcim/interfaces/", i)
}

// UpdateInterface patches an existing interface record by ID.
func (c *Client) UpdateInterface(ctx context.Context, id int, i InterfaceRecord) (*InterfaceRecord, error) {
	return patch[InterfaceRecord](ctx, c, "/dcim/interfaces/", id, i)
}

// DeleteInterface removes an interface record by ID.
func (c *Client) DeleteInterface(ctx context.Context, id int) error {
	return del(ctx, c, "/dcim/interfaces/", id)
}

// IPAddressRecord is the NetBox ipam.IPAddress shape.
type IPAddressRecord struct {
	ID                int    `json:"id,omitempty"`
	Address           string `json:"address"`
	AssignedObjectID   int    `json:"assigned_object_id,omitempty"`
	AssignedObjectType string `json:"assigned_object_type,omitempty"`
	Status            string `json:"status,omitempty"`
}

// ListIPAddressesForInterface returns every IP assigned to a given
// dcim.Interface.
func (c *Client) ListIPAddressesForInterface(ctx context.Context, interfaceID int) ([]IPAddressRecord, error) {
	return listAll[IPAddressRecord](ctx, c, "/ipam/ip-addresses/", ListParams{Extra: map[string]string{
		"assigned_object_type": "dcim.interface",
		"assigned_object_id":   strconv.Itoa(interfaceID),
	}})
}

// CreateIPAddress creates a new IP address record.
func (c *Client) CreateIPAddress(ctx context.Context, ip IPAddressRecord) (*IPAddressRecord, error) {
	return create[IPAddressRecord](ctx, c, "/ipam/ip-addresses/", ip)
}

// UpdateIPAddress patches an existing IP address record, used both for
// field changes and for moving an address to a new interface (spec.md
// §4.7's "IP reassignment" rule).
func (c *Client) UpdateIPAddress(ctx context.Context, id int, ip IPAddressRecord) (*IPAddressRecord, error) {
	return patch[IPAddressRecord](ctx, c, "/ipam/ip-addresses/", id, ip)
}

// DeleteIPAddress removes an IP address record by ID.
func (c *Client) DeleteIPAddress(ctx context.Context, id int) error {
	return del(ctx, c, "/ipam/ip-addresses/", id)
}

// VLANRecord is the NetBox ipam.VLAN shape.
type VLANRecord struct {
	ID   int    `json:"id,omitempty"`
	VID  int    `json:"vid"`
	Name string `json:"name"`
	Site int    `json:"site,omitempty"`
}

// ListVLANs returns every VLAN at a site, or globally if site is 0.
func (c *Client) ListVLANs(ctx context.Context, site int) ([]VLANRecord, error) {
	params := ListParams{Limit: 500}
	if site > 0 {
		params.Extra = map[string]string{"site_id": strconv.Itoa(site)}
	}
	return listAll[VLANRecord](ctx, c, "/ipam/vlans/", params)
}

// CreateVLAN creates a new VLAN record.
func (c *Client) CreateVLAN(ctx context.Context, v VLANRecord) (*VLANRecord, error) {
	return create[VLANRecord](ctx, c, "/ipam/vlans/", v)
}

// UpdateVLAN patches an existing VLAN record by ID.
func (c *Client) UpdateVLAN(ctx context.Context, id int, v VLANRecord) (*VLANRecord, error) {
	return patch[VLANRecord](ctx, c, "/ipam/vlans/", id, v)
}
