// Package task is the in-memory task manager tracking each collection or
// reconciliation run: its lifecycle, progress, and terminal result, per
// spec.md §4.8. Nothing here survives a process restart; append-only
// history of completed runs lives in pkg/history.
package task

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is a task's lifecycle state. Transitions into a terminal status
// are one-way (spec.md §4.8's "atomic terminal transition").
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// TaskStep is one named phase of a task's work, with its own completion
// flag — e.g. "collect", "reconcile". spec.md §4.9's `create(...steps)`
// operation seeds these up front; UpdateStep marks them done as the run
// advances through them in order.
type TaskStep struct {
	Name string
	Done bool
}

// Snapshot is a point-in-time, lock-free copy of a Task's fields, safe to
// hand to a caller or serialize.
type Snapshot struct {
	ID         string
	Operation  string
	Status     Status
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time

	Steps      []TaskStep
	StepIndex  int
	TotalSteps int
	ItemIndex  int
	TotalItems int
	ItemName   string

	Message string
	Error   string
	Result  interface{}

	ProgressPercent int
	ElapsedMs       int64
}

// Task is one tracked run. All field access goes through its methods,
// which hold mu for the duration.
type Task struct {
	mu     sync.Mutex
	fields Snapshot
}

// ID returns the task's identifier, fixed at creation.
func (t *Task) ID() string { return t.fields.ID }

// Snapshot returns a consistent, lock-free copy of the task's current
// state, including its derived progress percentage and elapsed time.
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.fields
	s.Steps = append([]TaskStep(nil), t.fields.Steps...)
	s.ProgressPercent = t.progressLocked()
	s.ElapsedMs = t.elapsedLocked()
	return s
}

func (t *Task) elapsedLocked() int64 {
	if t.fields.StartedAt.IsZero() {
		return 0
	}
	end := t.fields.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(t.fields.StartedAt).Milliseconds()
}

func (t *Task) progressLocked() int {
	if t.fields.Status == StatusCompleted {
		return 100
	}
	if t.fields.TotalItems > 0 {
		return clampPercent(100 * t.fields.ItemIndex / t.fields.TotalItems)
	}
	if t.fields.TotalSteps > 0 {
		return clampPercent(100 * t.fields.StepIndex / t.fields.TotalSteps)
	}
	return 0
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Manager tracks every task created during the process's lifetime.
type Manager struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{tasks: make(map[string]*Task)}
}

// Create registers a new pending task for the named operation
// ("collect", "sync", ...) and returns it. stepNames, if given, seeds the
// task's named step list (spec.md §4.9's `create(type, ..., steps)`); a
// caller with no natural step breakdown (e.g. a flat per-device fan-out)
// can omit it and track progress via UpdateItems instead.
func (m *Manager) Create(operation string, stepNames ...string) *Task {
	steps := make([]TaskStep, len(stepNames))
	for i, name := range stepNames {
		steps[i] = TaskStep{Name: name}
	}
	t := &Task{fields: Snapshot{
		ID:         uuid.NewString(),
		Operation:  operation,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
		Steps:      steps,
		TotalSteps: len(steps),
	}}
	m.mu.Lock()
	m.tasks[t.fields.ID] = t
	m.mu.Unlock()
	return t
}

// Get returns a task by ID, or nil if unknown.
func (m *Manager) Get(id string) *Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks[id]
}

// List returns a snapshot of every tracked task.
func (m *Manager) List() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Snapshot, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t.Snapshot())
	}
	return out
}

// Start transitions a pending task to running, recording an optional
// human-readable status message (spec.md §4.9's `start(task_id,
// message)`). totalItems, if positive, presets the item-based total — useful
// when the item count (e.g. device count) is already known at start time;
// a later UpdateItems call replaces it.
func (t *Task) Start(totalItems int, message ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fields.Status.terminal() {
		return
	}
	t.fields.Status = StatusRunning
	t.fields.StartedAt = time.Now()
	if totalItems > 0 {
		t.fields.TotalItems = totalItems
	}
	if len(message) > 0 {
		t.fields.Message = message[0]
	}
}

// UpdateStep advances the step-based progress counter and marks every
// step before it complete, per spec.md §4.9's `update(task_id,
// step_index?, ..., message?)`.
func (t *Task) UpdateStep(stepIndex int, message ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fields.Status.terminal() {
		return
	}
	t.fields.StepIndex = stepIndex
	for i := range t.fields.Steps {
		if i < stepIndex {
			t.fields.Steps[i].Done = true
		}
	}
	if len(message) > 0 {
		t.fields.Message = message[0]
	}
}

// UpdateItems advances the item-based progress counter, which takes
// precedence over step-based progress once set. itemName labels the item
// currently being processed (spec.md §4.9's `item_name`), e.g. the
// hostname of the device a worker is currently collecting.
func (t *Task) UpdateItems(itemIndex, totalItems int, itemName ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fields.Status.terminal() {
		return
	}
	t.fields.ItemIndex = itemIndex
	t.fields.TotalItems = totalItems
	if len(itemName) > 0 {
		t.fields.ItemName = itemName[0]
	}
}

// Complete marks the task finished successfully with the given result,
// and an optional status message. A no-op if already terminal —
// transitions into a terminal state happen exactly once (spec.md §4.9).
func (t *Task) Complete(result interface{}, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	t.mu.Lock()
	if t.fields.Status.terminal() {
		t.mu.Unlock()
		return
	}
	for i := range t.fields.Steps {
		t.fields.Steps[i].Done = true
	}
	t.mu.Unlock()
	t.finishWithMessage(StatusCompleted, msg, "", result)
}

// Fail marks the task finished with an error.
func (t *Task) Fail(err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	t.finishWithMessage(StatusFailed, "", msg, nil)
}

// Cancel marks the task cancelled, which Task.Cancelled then reports
// (spec.md §4.9). It does not stop in-flight work: no collector or
// reconciler in this module checks Task.Cancelled.
func (t *Task) Cancel() {
	t.finishWithMessage(StatusCancelled, "cancelled", "", nil)
}

// Cancelled reports whether this task has been asked to stop, for
// cooperative cancellation checks inside a long-running collect or
// reconcile loop.
func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fields.Status == StatusCancelled
}

func (t *Task) finishWithMessage(status Status, message, errMsg string, result interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fields.Status.terminal() {
		return
	}
	t.fields.Status = status
	t.fields.Error = errMsg
	t.fields.Result = result
	t.fields.FinishedAt = time.Now()
	if message != "" {
		t.fields.Message = message
	}
}
