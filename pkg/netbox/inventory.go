package netbox

import (
	"context"
	"strconv"
)

// InventoryItemRecord is the NetBox dcim.InventoryItem shape.
type InventoryItemRecord struct {
	ID           int    `json:"id,omitempty"`
	Device       int    `json:"device"`
	Name         string `json:"name"`
	Manufacturer int    `json:"manufacturer,omitempty"`
	PartID       string `json:"part_id,omitempty"`
	Serial       string `json:"serial,omitempty"`
	Description  string `json:"description,omitempty"`
}

// ListInventoryItems returns every inventory item belonging to deviceID.
func (c *Client) ListInventoryItems(ctx context.Context, deviceID int) ([]InventoryItemRecord, error) {
	return listAll[InventoryItemRecord](ctx, c, "/dcim/inventory-items/", ListParams{Extra: map[string]string{"device_id": strconv.Itoa(deviceID)}})
}

// CreateInventoryItem creates a new inventory item record.
func (c *Client) CreateInventoryItem(ctx context.Context, item InventoryItemRecord) (*InventoryItemRecord, error) {
	return create[InventoryItemRecord](ctx, c, "/dcim/inventory-items/", item)
}

// UpdateInventoryItem patches an existing inventory item by ID — used for
// a serial-number change on an otherwise-identical slot, which spec.md
// §4.7 treats as an update rather than a delete-then-create.
func (c *Client) UpdateInventoryItem(ctx context.Context, id int, item InventoryItemRecord) (*InventoryItemRecord, error) {
	return patch[InventoryItemRecord](ctx, c, "/dcim/inventory-items/", id, item)
}

// DeleteInventoryItem removes an inventory item record by ID.
func (c *Client) DeleteInventoryItem(ctx context.Context, id int) error {
	return del(ctx, c, "/dcim/inventory-items/", id)
}

// CableRecord is the NetBox dcim.Cable shape. Endpoints are termination
// object references; the reconciler treats (TerminationAID,
// TerminationBID) as an unordered pair when matching existing cables
// (spec.md §4.7).
type CableRecord struct {
	ID                int    `json:"id,omitempty"`
	TerminationAType   string `json:"termination_a_type"`
	TerminationAID     int    `json:"termination_a_id"`
	TerminationBType   string `json:"termination_b_type"`
	TerminationBID     int    `json:"termination_b_id"`
	Status            string `json:"status,omitempty"`
}

// ListCablesForInterface returns cables terminating on a dcim.Interface,
// on either end.
func (c *Client) ListCablesForInterface(ctx context.Context, interfaceID int) ([]CableRecord, error) {
	aEnd, err := listAll[CableRecord](ctx, c, "/dcim/cables/", ListParams{Extra: map[string]string{
		"termination_a_type": "dcim.interface",
		"termination_a_id":   strconv.Itoa(interfaceID),
	}})
	if err != nil {
		return nil, err
	}
	bEnd, err := listAll[CableRecord](ctx, c, "/dcim/cables/", ListParams{Extra: map[string]string{
		"termination_b_type": "dcim.interface",
		"termination_b_id":   strconv.Itoa(interfaceID),
	}})
	if err != nil {
		return nil, err
	}
	return append(aEnd, bEnd...), nil
}

// CreateCable creates a new cable record.
func (c *Client) CreateCable(ctx context.Context, cable CableRecord) (*CableRecord, error) {
	return create[CableRecord](ctx, c, "/dcim/cables/", cable)
}

// DeleteCable removes a cable record by ID. Cables whose endpoints fall
// outside the devices in scope for a run are never deleted by the
// reconciler, per spec.md §4.7's cleanup policy — that decision lives in
// pkg/reconcile, not here.
func (c *Client) DeleteCable(ctx context.Context, id int) error {
	return del(ctx, c, "/dcim/cables/", id)
}

// SameEndpoints reports whether two cables terminate on the same
// unordered pair of objects.
func SameEndpoints(a, b CableRecord) bool {
	fwd := a.TerminationAType == b.TerminationAType && a.TerminationAID == b.TerminationAID &&
		a.TerminationBType == b.TerminationBType && a.TerminationBID == b.TerminationBID
	rev := a.TerminationAType == b.TerminationBType && a.TerminationAID == b.TerminationBID &&
		a.TerminationBType == b.TerminationAType && a.TerminationBID == b.TerminationAID
	return fwd || rev
}
