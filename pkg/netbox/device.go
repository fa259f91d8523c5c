package netbox

import "context"

// DeviceRecord is the NetBox dcim.Device shape the reconciler diffs
// against, per spec.md §4.7.
type DeviceRecord struct {
	ID           int                    `json:"id,omitempty"`
	Name         string                 `json:"name"`
	DeviceType   int                    `json:"device_type"`
	Role         int                    `json:"role"`
	Site         int                    `json:"site"`
	Platform     int                    `json:"platform,omitempty"`
	Serial       string                 `json:"serial,omitempty"`
	Status       string                 `json:"status,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
}

// ListDevices returns every device at the site, or every device if site
// is empty.
func (c *Client) ListDevices(ctx context.Context, site string) ([]DeviceRecord, error) {
	params := ListParams{Limit: 500}
	if site != "" {
		params.Extra = map[string]string{"site": site}
	}
	return listAll[DeviceRecord](ctx, c, "/dcim/devices/", params)
}

// GetDeviceByName looks up one device by its exact name, returning nil if
// absent.
func (c *Client) GetDeviceByName(ctx context.Context, name string) (*DeviceRecord, error) {
	results, err := listAll[DeviceRecord](ctx, c, "/dcim/devices/", ListParams{Extra: map[string]string{"name": name}})
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

// CreateDevice creates a new device record.
func (c *Client) CreateDevice(ctx context.Context, d DeviceRecord) (*DeviceRecord, error) {
	return create[DeviceRecord](ctx, c, "/dcim/devices/", d)
}

// UpdateDevice patches an existing device record by ID.
func (c *Client) UpdateDevice(ctx context.Context, id int, d DeviceRecord) (*DeviceRecord, error) {
	return patch[DeviceRecord](ctx, c, "/dcim/devices/", id, d)
}

// DeleteDevice removes a device record by ID.
func (c *Client) DeleteDevice(ctx context.Context, id int) error {
	return del(ctx, c, "/dcim/devices/", id)
}

// EnsureCatalog resolves (creating if absent) the manufacturer, site,
// device role, platform, and device type a device record needs, per
// spec.md §4.6's get-or-create chain.
func (c *Client) EnsureCatalog(ctx context.Context, manufacturer, site, role, platform, model string, slugFn func(string) string) (deviceTypeID, roleID, siteID, platformID int, err error) {
	mfg, err := getOrCreateManufacturer(ctx, c, manufacturer, slugFn(manufacturer))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	s, err := getOrCreateSite(ctx, c, site, slugFn(site))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	r, err := getOrCreateDeviceRole(ctx, c, role, slugFn(role))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	p, err := getOrCreatePlatform(ctx, c, platform, slugFn(platform))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	dt, err := getOrCreateDeviceType(ctx, c, model, slugFn(model), mfg.ID)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return dt.ID, r.ID, s.ID, p.ID, nil
}
