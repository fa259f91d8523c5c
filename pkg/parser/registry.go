// Package parser maps (platform, command) to a template-driven parser,
// falling back to a per-command regex when no template matches
// (spec.md §4.3). Both strategies return raw dictionaries; normalization
// into typed records happens one layer up, in pkg/normalize.
package parser

import (
	"github.com/meridian-net/netcollector/pkg/session"
)

// Row is one raw parsed record. Keys vary by vendor+template; pkg/normalize
// reconciles the differences.
type Row map[string]interface{}

// TemplateFunc parses command output into rows using a structured
// template. Returns (nil, false) when no template matches, signaling the
// registry to fall back to the regex parser.
type TemplateFunc func(output string) ([]Row, bool)

// RegexFunc recovers the minimum fields via a hand-written regex when no
// template matched.
type RegexFunc func(output string) []Row

// entry pairs a template with its regex fallback for one command.
type entry struct {
	template TemplateFunc
	regex    RegexFunc
}

// Registry maps (dialect, command) to a parse entry.
type Registry struct {
	entries map[session.Dialect]map[string]entry
}

// NewRegistry builds the default registry covering every command in
// spec.md §6's command table.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[session.Dialect]map[string]entry)}
	registerInterfaceParsers(r)
	registerLAGParsers(r)
	registerSwitchportParsers(r)
	registerMediaTypeParsers(r)
	registerMACTableParsers(r)
	registerNeighborParsers(r)
	registerInventoryParsers(r)
	registerVersionParsers(r)
	return r
}

func (r *Registry) register(d session.Dialect, command string, tmpl TemplateFunc, re RegexFunc) {
	if r.entries[d] == nil {
		r.entries[d] = make(map[string]entry)
	}
	r.entries[d][command] = entry{template: tmpl, regex: re}
}

// Parse runs the template parser for (dialect, command); if it reports no
// match, falls back to the regex parser. Returns an empty slice (not an
// error) when neither the dialect nor the command is registered — the
// collector is responsible for deciding a command has no entry at all
// (spec.md §4.4 step 1).
func (r *Registry) Parse(d session.Dialect, command, output string) []Row {
	byCommand, ok := r.entries[d]
	if !ok {
		return nil
	}
	e, ok := byCommand[command]
	if !ok {
		return nil
	}
	if e.template != nil {
		if rows, matched := e.template(output); matched {
			return rows
		}
	}
	if e.regex != nil {
		return e.regex(output)
	}
	return nil
}
