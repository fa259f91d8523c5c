package collector

import (
	"context"
	"strconv"
	"strings"

	"github.com/meridian-net/netcollector/pkg/canon"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/normalize"
	"github.com/meridian-net/netcollector/pkg/parser"
	"github.com/meridian-net/netcollector/pkg/session"
	"github.com/meridian-net/netcollector/pkg/util"
)

func aliasesOf(name string) []string {
	aliases := canon.GetAliases(canon.ToLongName(name))
	out := make([]string, len(aliases))
	for i, a := range aliases {
		out[i] = strings.ToLower(a)
	}
	return out
}

// EnrichmentConfig toggles optional secondary commands, per spec.md §4.4
// step 3 ("if enabled and the platform has an entry...").
type EnrichmentConfig struct {
	LAG         bool
	Switchport  bool
	MediaType   bool
	Transceiver bool
}

// DefaultEnrichmentConfig enables every enrichment.
func DefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{LAG: true, Switchport: true, MediaType: true, Transceiver: true}
}

// Interfaces is the per-entity collector function described by spec.md
// §4.4: "(device, session, config) -> list[record]". A missing primary
// command entry yields an empty list; failures in any single enrichment
// command are logged and skipped without aborting the collector.
func Interfaces(ctx context.Context, sess *session.Session, reg *parser.Registry, cfg EnrichmentConfig) []model.Interface {
	d := sess.Dialect()
	log := util.WithDevice(sess.Hostname())

	primaryCmd, ok := commandFor("interfaces", d)
	if !ok {
		return nil
	}
	output, err := sess.Send(ctx, primaryCmd)
	if err != nil {
		log.WithField("command", primaryCmd).WithField("err", err).Warn("interface collection failed")
		return nil
	}
	rows := reg.Parse(d, primaryCmd, output)

	enrich := normalize.EnrichmentInputs{}

	if cfg.LAG {
		if cmd, ok := commandFor("lag", d); ok {
			if out, err := sess.Send(ctx, cmd); err == nil {
				enrich.LAG = normalize.BuildLAGMembership(reg.Parse(d, cmd, out))
			} else {
				log.WithField("command", cmd).WithField("err", err).Debug("LAG enrichment skipped")
			}
		}
	}

	if cfg.Switchport {
		if cmd, ok := commandFor("switchport", d); ok {
			if out, err := sess.Send(ctx, cmd); err == nil {
				enrich.Switchport = buildSwitchportInfo(reg.Parse(d, cmd, out))
			} else {
				log.WithField("command", cmd).WithField("err", err).Debug("switchport enrichment skipped")
			}
		}
	}

	if cfg.MediaType {
		if cmd, ok := commandFor("interface_status", d); ok {
			if out, err := sess.Send(ctx, cmd); err == nil {
				enrich.MediaType = buildMediaTypeMap(reg.Parse(d, cmd, out))
			} else {
				log.WithField("command", cmd).WithField("err", err).Debug("media-type enrichment skipped")
			}
		}
	}

	return normalize.Interfaces(rows, sess.Hostname(), sess.Host(), enrich)
}

func buildSwitchportInfo(rows []parser.Row) map[string]normalize.SwitchportInfo {
	if len(rows) == 0 {
		return nil
	}
	m := make(map[string]normalize.SwitchportInfo, len(rows))
	for _, row := range rows {
		name, _ := row["interface"].(string)
		if name == "" {
			continue
		}
		info := normalize.SwitchportInfo{}
		info.AdminMode, _ = row["admin_mode"].(string)
		info.TrunkingVLANs, _ = row["trunking_vlans"].(string)
		if raw, _ := row["access_vlan"].(string); raw != "" {
			info.AccessVLAN, _ = strconv.Atoi(raw)
		}
		for _, alias := range aliasesOf(name) {
			m[alias] = info
		}
	}
	return m
}

func buildMediaTypeMap(rows []parser.Row) map[string]string {
	if len(rows) == 0 {
		return nil
	}
	m := make(map[string]string, len(rows))
	for _, row := range rows {
		name, _ := row["interface"].(string)
		media, _ := row["media_type"].(string)
		if name == "" || media == "" {
			continue
		}
		for _, alias := range aliasesOf(name) {
			m[alias] = media
		}
	}
	return m
}
