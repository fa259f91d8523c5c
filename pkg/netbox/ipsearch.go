package netbox

import "context"

// FindIPAddressByText looks up an IP address record by its exact
// "address/prefix" text, globally, regardless of what it's assigned to.
// Used by the reconciler to detect an address that moved to a different
// interface rather than treating the move as a duplicate create.
func (c *Client) FindIPAddressByText(ctx context.Context, address string) (*IPAddressRecord, error) {
	results, err := listAll[IPAddressRecord](ctx, c, "/ipam/ip-addresses/", ListParams{Extra: map[string]string{"address": address}})
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}
