// Package registry declares the collaborator interfaces the core engine
// depends on but does not implement, per spec.md §1/§6: the external
// device registry of record, an interactive credential prompt, an
// export sink, and a config-file loader. Each is a thin seam so the
// engine can be wired to a real backend (an inventory system's API, a
// terminal prompt, a file or object store) without importing it
// directly.
package registry

import (
	"context"

	"github.com/meridian-net/netcollector/pkg/model"
)

// DeviceRegistry is the external source of truth for which devices exist
// and how to reach them. The core engine only ever reads from it —
// device lifecycle (enabled/offline/decommissioned) is owned entirely
// outside this module.
type DeviceRegistry interface {
	// ListDevices returns every device currently enabled for collection.
	ListDevices(ctx context.Context) ([]model.Device, error)
	// GetDevice looks up one device by name.
	GetDevice(ctx context.Context, name string) (*model.Device, error)
}

// CredentialPrompt supplies per-run device credentials, typically backed
// by an interactive terminal prompt or a secrets manager lookup.
type CredentialPrompt interface {
	Prompt(ctx context.Context, device model.Device) (model.Credentials, error)
}

// Exporter writes a completed run's collected or reconciled records to an
// external sink (a file, an object store, a message bus).
type Exporter interface {
	Export(ctx context.Context, operation string, records interface{}) error
}

// ConfigLoader reads the operator-supplied configuration document
// (device list, credentials source, NetBox connection, field policy
// overrides) from its backing store.
type ConfigLoader interface {
	Load(ctx context.Context, path string) (map[string]interface{}, error)
}
