package collector

import (
	"context"

	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/normalize"
	"github.com/meridian-net/netcollector/pkg/parser"
	"github.com/meridian-net/netcollector/pkg/session"
	"github.com/meridian-net/netcollector/pkg/util"
)

// MACTable collects and normalizes the device's MAC address table.
func MACTable(ctx context.Context, sess *session.Session, reg *parser.Registry) []model.MACEntry {
	d := sess.Dialect()
	cmd, ok := commandFor("mac_table", d)
	if !ok {
		return nil
	}
	output, err := sess.Send(ctx, cmd)
	if err != nil {
		util.WithDevice(sess.Hostname()).WithField("command", cmd).WithField("err", err).Warn("MAC table collection failed")
		return nil
	}
	rows := reg.Parse(d, cmd, output)
	return normalize.MACEntries(rows, sess.Hostname(), sess.Host())
}

// Neighbors collects and normalizes LLDP (and, where supported, CDP)
// neighbor detail.
func Neighbors(ctx context.Context, sess *session.Session, reg *parser.Registry) []model.Neighbor {
	d := sess.Dialect()
	var out []model.Neighbor

	if cmd, ok := commandFor("lldp", d); ok {
		if output, err := sess.Send(ctx, cmd); err == nil {
			out = append(out, normalize.Neighbors(reg.Parse(d, cmd, output), sess.Hostname(), model.DiscoveryLLDP)...)
		} else {
			util.WithDevice(sess.Hostname()).WithField("err", err).Debug("LLDP collection failed")
		}
	}
	if cmd, ok := commandFor("cdp", d); ok {
		if output, err := sess.Send(ctx, cmd); err == nil {
			out = append(out, normalize.Neighbors(reg.Parse(d, cmd, output), sess.Hostname(), model.DiscoveryCDP)...)
		} else {
			util.WithDevice(sess.Hostname()).WithField("err", err).Debug("CDP collection failed")
		}
	}
	return out
}

// Inventory collects "show inventory" plus, where supported, synthesized
// transceiver entries, merged per spec.md §4.7.
func Inventory(ctx context.Context, sess *session.Session, reg *parser.Registry, cfg EnrichmentConfig) []model.InventoryItem {
	d := sess.Dialect()
	var items []model.InventoryItem

	if cmd, ok := commandFor("inventory", d); ok {
		if output, err := sess.Send(ctx, cmd); err == nil {
			items = normalize.InventoryItems(reg.Parse(d, cmd, output), sess.Hostname())
		}
	}

	if cfg.Transceiver {
		if cmd, ok := commandFor("transceiver", d); ok {
			if output, err := sess.Send(ctx, cmd); err == nil {
				transceivers := normalize.TransceiverInventoryItems(reg.Parse(d, cmd, output), sess.Hostname())
				items = normalize.InventoryItemsFromTransceivers(items, transceivers)
			}
		}
	}
	return items
}
