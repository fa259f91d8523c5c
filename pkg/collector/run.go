package collector

import (
	"context"

	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/parser"
	"github.com/meridian-net/netcollector/pkg/session"
)

// Result bundles every entity type collected for one device in a single
// logical run, matching the "merge by device" step of spec.md §2's data
// flow diagram. A Result is produced once per device and handed directly
// to the reconciler-input builder.
type Result struct {
	Hostname   string
	Info       model.DeviceInfo
	Interfaces []model.Interface
	MACTable   []model.MACEntry
	Neighbors  []model.Neighbor
	Inventory  []model.InventoryItem
}

// RunOptions controls which enrichments and entities a device run
// exercises.
type RunOptions struct {
	Enrichment EnrichmentConfig
	Entities   EntitySet
}

// EntitySet toggles which top-level collectors run; all true by default.
type EntitySet struct {
	Interfaces bool
	MACTable   bool
	Neighbors  bool
	Inventory  bool
}

// DefaultEntitySet enables every collector.
func DefaultEntitySet() EntitySet {
	return EntitySet{Interfaces: true, MACTable: true, Neighbors: true, Inventory: true}
}

// RunDevice opens one session against host, drives every enabled
// collector against it, and closes the session on every exit path
// (spec.md §4.2). The session's identified hostname — not the dialed
// host — becomes the canonical owner of every record it returns.
func RunDevice(ctx context.Context, host string, platform model.Platform, creds model.Credentials, sessOpts session.Options, reg *parser.Registry, opts RunOptions) (Result, error) {
	sess, err := session.Open(ctx, host, platform, creds, sessOpts)
	if err != nil {
		return Result{}, err
	}
	defer sess.Close()

	result := Result{Hostname: sess.Hostname()}
	result.Info = DeviceInfo(ctx, sess, reg)

	if opts.Entities.Interfaces {
		result.Interfaces = Interfaces(ctx, sess, reg, opts.Enrichment)
	}
	if opts.Entities.MACTable {
		result.MACTable = MACTable(ctx, sess, reg)
	}
	if opts.Entities.Neighbors {
		result.Neighbors = Neighbors(ctx, sess, reg)
	}
	if opts.Entities.Inventory {
		result.Inventory = Inventory(ctx, sess, reg, opts.Enrichment)
	}

	return result, nil
}
