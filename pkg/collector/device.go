package collector

import (
	"context"

	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/normalize"
	"github.com/meridian-net/netcollector/pkg/parser"
	"github.com/meridian-net/netcollector/pkg/session"
	"github.com/meridian-net/netcollector/pkg/util"
)

// DeviceInfo collects and normalizes "show version" into the catalog-level
// summary reconciled against the device's inventory record.
func DeviceInfo(ctx context.Context, sess *session.Session, reg *parser.Registry) model.DeviceInfo {
	d := sess.Dialect()
	cmd, ok := commandFor("version", d)
	if !ok {
		return normalize.DeviceInfo(nil, sess.Hostname(), sess.Host(), sess.Platform())
	}
	output, err := sess.Send(ctx, cmd)
	if err != nil {
		util.WithDevice(sess.Hostname()).WithField("err", err).Warn("version collection failed")
		return normalize.DeviceInfo(nil, sess.Hostname(), sess.Host(), sess.Platform())
	}
	rows := reg.Parse(d, cmd, output)
	return normalize.DeviceInfo(rows, sess.Hostname(), sess.Host(), sess.Platform())
}
