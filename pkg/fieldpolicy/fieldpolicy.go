// Package fieldpolicy controls, per entity type and field name, whether
// a collected field is pushed to the inventory of record, what source
// key it's renamed from, what default it falls back to when absent, and
// what order it's rendered in for diff/export output. It lets an
// operator disable noisy fields (e.g. MTU) without touching collector or
// reconciler code, per spec.md §4.10.
package fieldpolicy

import "sort"

// Policy is one (entity type, field) rule.
type Policy struct {
	EntityType   string
	Field        string
	Enabled      bool
	SourceField  string // raw collected key this field is renamed from, if different
	Default      interface{}
	DisplayOrder int
}

// Table is the full set of field policies, keyed by entity type then
// field name.
type Table struct {
	policies map[string]map[string]Policy
}

// NewDefaultTable builds the built-in policy set every entity type ships
// with: every model field enabled, in declaration order, with no
// renames or defaults. Callers layer operator overrides on top with Set.
func NewDefaultTable() *Table {
	t := &Table{policies: make(map[string]map[string]Policy)}

	register := func(entity string, fields ...string) {
		for i, f := range fields {
			t.Set(Policy{EntityType: entity, Field: f, Enabled: true, DisplayOrder: i})
		}
	}

	register("device", "name", "platform", "role", "site", "serial", "status")
	register("interface", "name", "description", "admin_status", "oper_status",
		"ip_address", "mac_address", "speed_mbps", "mtu", "mode", "untagged_vlan", "tagged_vlans", "lag")
	register("ip_address", "address", "interface", "status")
	register("vlan", "vid", "name", "site")
	register("inventory_item", "name", "description", "part_id", "serial", "manufacturer")
	register("cable", "termination_a", "termination_b", "status")

	return t
}

// Set installs or replaces a policy.
func (t *Table) Set(p Policy) {
	if t.policies[p.EntityType] == nil {
		t.policies[p.EntityType] = make(map[string]Policy)
	}
	t.policies[p.EntityType][p.Field] = p
}

// Get returns the policy for (entityType, field), and whether one is
// registered at all — an unregistered field is treated as enabled with
// no rename/default, matching the "no policy means pass through" default
// from spec.md §4.10.
func (t *Table) Get(entityType, field string) (Policy, bool) {
	byField, ok := t.policies[entityType]
	if !ok {
		return Policy{}, false
	}
	p, ok := byField[field]
	return p, ok
}

// IsEnabled reports whether a field should be collected/pushed for an
// entity type. Unregistered fields default to enabled.
func (t *Table) IsEnabled(entityType, field string) bool {
	p, ok := t.Get(entityType, field)
	if !ok {
		return true
	}
	return p.Enabled
}

// Apply resolves the effective value for a field: the raw value under
// its renamed source key if present, else the configured default, else
// the zero value already present in raw.
func (t *Table) Apply(entityType, field string, raw map[string]interface{}) interface{} {
	p, ok := t.Get(entityType, field)
	if !ok {
		return raw[field]
	}
	key := field
	if p.SourceField != "" {
		key = p.SourceField
	}
	if v, present := raw[key]; present {
		return v
	}
	return p.Default
}

// OrderedFields returns the enabled fields for an entity type sorted by
// DisplayOrder, for rendering diff/export output in a stable order.
func (t *Table) OrderedFields(entityType string) []string {
	byField, ok := t.policies[entityType]
	if !ok {
		return nil
	}
	ordered := make([]Policy, 0, len(byField))
	for _, p := range byField {
		if p.Enabled {
			ordered = append(ordered, p)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].DisplayOrder < ordered[j].DisplayOrder })
	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Field
	}
	return names
}
