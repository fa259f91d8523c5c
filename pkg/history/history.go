// Package history is the append-only record of completed collection and
// reconciliation runs, per spec.md §4.9. Grounded on the teacher's
// JSON-lines audit logger, but generalized from rotating log files into a
// single JSON-array file capped at a fixed entry count with FIFO
// eviction — there is no rotation to manage, only one bounded file.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/meridian-net/netcollector/pkg/util"
)

// Status is the terminal outcome of one recorded run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Event is one completed run recorded to history. Devices carries every
// device the run touched (spec.md §3's "devices list"); Device mirrors
// Devices[0] when there is exactly one, kept for simple single-device
// filtering and for back-compatibility with callers that only ever
// reconciled one device at a time.
type Event struct {
	ID           string            `json:"id"`
	Timestamp    time.Time         `json:"timestamp"`
	Operation    string            `json:"operation"` // "collect", "sync"
	Device       string            `json:"device,omitempty"`
	Devices      []string          `json:"devices,omitempty"`
	Status       Status            `json:"status"`
	Stats        map[string]EntityStats `json:"stats,omitempty"`
	TotalChanges int               `json:"total_changes,omitempty"`
	Duration     time.Duration     `json:"duration"`
	Error        string            `json:"error,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// EntityStats is the per-entity counters a run summary reports, per
// spec.md §7: "A run summary always reports, per entity, counters
// {created, updated, deleted, skipped, failed}". PolicySkipped is an
// additional breakdown of Skipped: entries withheld by policy (cleanup
// disabled, excluded by pattern, mode change without VLAN list) rather
// than because nothing differed. Skipped always counts both.
type EntityStats struct {
	Created       int `json:"created"`
	Updated       int `json:"updated"`
	Deleted       int `json:"deleted"`
	Skipped       int `json:"skipped"`
	PolicySkipped int `json:"policy_skipped,omitempty"`
	Failed        int `json:"failed"`
	// AlreadyExists counts matches found on lookup rather than created —
	// only meaningful for entities with a bulk-match identity, notably
	// cables (spec.md §4.7's endpoint-pair match).
	AlreadyExists int `json:"already_exists,omitempty"`
}

func (e Event) hasDevice(name string) bool {
	if e.Device == name {
		return true
	}
	for _, d := range e.Devices {
		if d == name {
			return true
		}
	}
	return false
}

// Filter narrows a Query.
type Filter struct {
	Operation string
	Status    Status
	Device    string
	Limit     int
	Offset    int
}

// Stats summarizes the stored history.
type Stats struct {
	Total        int            `json:"total"`
	ByOperation  map[string]int `json:"by_operation"`
	ByStatus     map[Status]int `json:"by_status"`
	Last24Hours  int            `json:"last_24_hours"`
}

// Store is a single JSON-array-file-backed history with a fixed capacity.
// Every write takes the Store's own mutex, reads the whole file,
// appends, evicts the oldest entries past Capacity, and rewrites —
// acceptable given the bounded size and the low write rate of completed
// runs (spec.md §4.9). The mutex belongs to the Store value: two Stores
// opened on the same path do not serialize against each other.
type Store struct {
	path     string
	capacity int
	mu       sync.Mutex
}

// DefaultCapacity is spec.md §4.9's default FIFO cap.
const DefaultCapacity = 1000

// NewStore opens (or creates) a history file at path with the given
// capacity. capacity <= 0 uses DefaultCapacity.
func NewStore(path string, capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	s := &Store{path: path, capacity: capacity}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Append records a new event, evicting the oldest entries once the store
// exceeds its capacity.
func (s *Store) Append(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.readAll()
	if err != nil {
		return err
	}
	events = append(events, e)
	if len(events) > s.capacity {
		events = events[len(events)-s.capacity:]
	}
	return s.writeAll(events)
}

// Query returns stored events matching filter, newest first.
func (s *Store) Query(filter Filter) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.readAll()
	if err != nil {
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.After(events[j].Timestamp) })

	var matched []Event
	for _, e := range events {
		if filter.Operation != "" && e.Operation != filter.Operation {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Device != "" && !e.hasDevice(filter.Device) {
			continue
		}
		matched = append(matched, e)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Stats aggregates counts across the whole store.
func (s *Store) Stats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.readAll()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{ByOperation: make(map[string]int), ByStatus: make(map[Status]int)}
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, e := range events {
		stats.Total++
		stats.ByOperation[e.Operation]++
		stats.ByStatus[e.Status]++
		if e.Timestamp.After(cutoff) {
			stats.Last24Hours++
		}
	}
	return stats, nil
}

func (s *Store) readAll() ([]Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		util.Logger.WithField("path", s.path).WithField("err", err).Warn("history file corrupt, starting fresh")
		return nil, nil
	}
	return events, nil
}

func (s *Store) writeAll(events []Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
