package netbox

import "context"

// Catalog objects are looked up by slug first, then by name, then
// created, per spec.md §4.6 ("get-or-create-by-slug-then-name").

// Manufacturer is a NetBox manufacturer record.
type Manufacturer struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Site is a NetBox site record.
type Site struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DeviceType is a NetBox device-type record, scoped to a manufacturer.
type DeviceType struct {
	ID           int    `json:"id,omitempty"`
	Model        string `json:"model"`
	Slug         string `json:"slug"`
	Manufacturer int    `json:"manufacturer"`
}

// DeviceRole is a NetBox device-role record.
type DeviceRole struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color,omitempty"`
}

// Platform is a NetBox platform record.
type Platform struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// EnsureManufacturer resolves (creating if absent) a manufacturer by
// slug-then-name.
func (c *Client) EnsureManufacturer(ctx context.Context, name, slug string) (*Manufacturer, error) {
	return getOrCreateManufacturer(ctx, c, name, slug)
}

// EnsureSite resolves (creating if absent) a site by slug-then-name. VLAN
// reconciliation uses this to scope its lookups, since VLAN identity is
// (site, VID), not VID alone.
func (c *Client) EnsureSite(ctx context.Context, name, slug string) (*Site, error) {
	return getOrCreateSite(ctx, c, name, slug)
}

func getOrCreateManufacturer(ctx context.Context, c *Client, name, slug string) (*Manufacturer, error) {
	found, err := findBySlugThenName[Manufacturer](ctx, c, "/dcim/manufacturers/", slug, name)
	if err != nil || found != nil {
		return found, err
	}
	return create[Manufacturer](ctx, c, "/dcim/manufacturers/", Manufacturer{Name: name, Slug: slug})
}

func getOrCreateSite(ctx context.Context, c *Client, name, slug string) (*Site, error) {
	found, err := findBySlugThenName[Site](ctx, c, "/dcim/sites/", slug, name)
	if err != nil || found != nil {
		return found, err
	}
	return create[Site](ctx, c, "/dcim/sites/", Site{Name: name, Slug: slug})
}

func getOrCreateDeviceRole(ctx context.Context, c *Client, name, slug string) (*DeviceRole, error) {
	found, err := findBySlugThenName[DeviceRole](ctx, c, "/dcim/device-roles/", slug, name)
	if err != nil || found != nil {
		return found, err
	}
	return create[DeviceRole](ctx, c, "/dcim/device-roles/", DeviceRole{Name: name, Slug: slug, Color: "9e9e9e"})
}

func getOrCreatePlatform(ctx context.Context, c *Client, name, slug string) (*Platform, error) {
	found, err := findBySlugThenName[Platform](ctx, c, "/dcim/platforms/", slug, name)
	if err != nil || found != nil {
		return found, err
	}
	return create[Platform](ctx, c, "/dcim/platforms/", Platform{Name: name, Slug: slug})
}

func getOrCreateDeviceType(ctx context.Context, c *Client, model, slug string, manufacturerID int) (*DeviceType, error) {
	found, err := findBySlugThenName[DeviceType](ctx, c, "/dcim/device-types/", slug, model)
	if err != nil || found != nil {
		return found, err
	}
	return create[DeviceType](ctx, c, "/dcim/device-types/", DeviceType{Model: model, Slug: slug, Manufacturer: manufacturerID})
}

// findBySlugThenName tries an exact slug filter first, then falls back to
// a name filter. Both are exact-match lookups; NetBox's list filters
// already do this server-side.
func findBySlugThenName[T any](ctx context.Context, c *Client, path, slug, name string) (*T, error) {
	if slug != "" {
		results, err := listAll[T](ctx, c, path, ListParams{Extra: map[string]string{"slug": slug}})
		if err != nil {
			return nil, err
		}
		if len(results) > 0 {
			return &results[0], nil
		}
	}
	if name != "" {
		results, err := listAll[T](ctx, c, path, ListParams{Extra: map[string]string{"name": name}})
		if err != nil {
			return nil, err
		}
		if len(results) > 0 {
			return &results[0], nil
		}
	}
	return nil, nil
}
