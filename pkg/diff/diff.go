// Package diff computes field-level and object-level differences between
// a freshly collected record and its existing inventory counterpart, per
// spec.md §4.7. It never talks to NetBox or a device; it is a pure
// comparison layer consumed by pkg/reconcile.
package diff

import "strconv"

// FieldChange is one differing field between the desired and current
// state of an object.
type FieldChange struct {
	Field   string
	Current interface{}
	Desired interface{}
}

// ChangeKind classifies an ObjectChange.
type ChangeKind string

const (
	ChangeCreate ChangeKind = "create"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
	ChangeSkip   ChangeKind = "skip"
	ChangeNone   ChangeKind = "none"
)

// ObjectChange is one entity's diff result: its identity key, the kind of
// change required, and the specific fields that differ (populated only
// for ChangeUpdate). Reason is populated only for ChangeSkip, per spec.md
// §4.8, and explains why a change that would otherwise apply was withheld
// by policy (e.g. "cleanup disabled", "excluded by pattern") rather than
// because nothing differed.
type ObjectChange struct {
	EntityType string
	Key        string
	Kind       ChangeKind
	Fields     []FieldChange
	Reason     string
}

// Result aggregates every ObjectChange discovered across one reconcile
// pass; the reconciler keeps one Result per entity type.
type Result struct {
	Changes []ObjectChange
}

// TotalChanges returns the count of creates, updates, and deletes —
// matching spec.md §4.8's "total_changes counts creates + updates +
// deletes but not skips" (ChangeNone is likewise excluded: it isn't a
// change at all).
func (r Result) TotalChanges() int {
	n := 0
	for _, c := range r.Changes {
		switch c.Kind {
		case ChangeCreate, ChangeUpdate, ChangeDelete:
			n++
		}
	}
	return n
}

// CountByKind tallies changes per kind, for summary rendering.
func (r Result) CountByKind() map[ChangeKind]int {
	counts := make(map[ChangeKind]int)
	for _, c := range r.Changes {
		counts[c.Kind]++
	}
	return counts
}

// FormatSummary renders spec.md §4.8's one-line summary, e.g.
// "+3 new ~1 update -0 delete". Skips are appended only when showSkips is
// true, since they aren't "changes" in the total_changes sense.
func (r Result) FormatSummary(showSkips bool) string {
	counts := r.CountByKind()
	out := "+" + strconv.Itoa(counts[ChangeCreate]) + " new " +
		"~" + strconv.Itoa(counts[ChangeUpdate]) + " update " +
		"-" + strconv.Itoa(counts[ChangeDelete]) + " delete"
	if showSkips {
		out += " " + strconv.Itoa(counts[ChangeSkip]) + " skip"
	}
	return out
}

// FormatDetailed renders one line per object change, with its field diffs
// indented beneath it — the "format_detailed" view from spec.md §4.8.
// Skip entries are included only when showSkips is true.
func (r Result) FormatDetailed(showSkips bool) string {
	var out string
	for _, c := range r.Changes {
		if c.Kind == ChangeNone {
			continue
		}
		if c.Kind == ChangeSkip && !showSkips {
			continue
		}
		out += string(c.Kind) + " " + c.EntityType + " " + c.Key
		if c.Kind == ChangeSkip && c.Reason != "" {
			out += " (" + c.Reason + ")"
		}
		out += "\n"
		for _, f := range c.Fields {
			out += "  " + f.Field + ": " + toString(f.Current) + " -> " + toString(f.Desired) + "\n"
		}
	}
	return out
}

func toString(v interface{}) string {
	if v == nil {
		return "<none>"
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return "<empty>"
		}
		return s
	}
	return itoaAny(v)
}

func itoaAny(v interface{}) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// CompareFields builds the FieldChange list between two field maps for
// the keys present in either, skipping keys whose values are equal.
// equalFn allows callers to special-case comparisons (e.g. spec.md §4.7's
// "empty string and missing field are equivalent" rule for descriptions).
func CompareFields(current, desired map[string]interface{}, equalFn func(field string, a, b interface{}) bool) []FieldChange {
	seen := make(map[string]bool)
	var changes []FieldChange
	for k := range current {
		seen[k] = true
	}
	for k := range desired {
		seen[k] = true
	}
	for k := range seen {
		a, b := current[k], desired[k]
		if equalFn != nil && equalFn(k, a, b) {
			continue
		}
		if equalFn == nil && a == b {
			continue
		}
		changes = append(changes, FieldChange{Field: k, Current: a, Desired: b})
	}
	return changes
}
