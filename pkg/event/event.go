// Package event tracks running game events and dispatches their named
// hooks. Events are script-driven happenings (derelicts, news, bar
// patrons) that outlive a single function call; the bar registry refers
// to them by id only.
package event

import (
	"fmt"
	"log/slog"
)

// HookFunc is a named callback registered on a running event.
type HookFunc func(id uint32) error

// Event is a single running event instance.
type Event struct {
	ID    uint32
	Name  string
	hooks map[string]HookFunc
}

// RegisterHook attaches a named hook to the event, replacing any previous
// hook of the same name.
func (e *Event) RegisterHook(name string, fn HookFunc) {
	e.hooks[name] = fn
}

// Manager owns all running events. Ids are assigned monotonically and
// never reused, mirroring the bar registry's identity discipline.
type Manager struct {
	log     *slog.Logger
	idGen   uint32
	running map[uint32]*Event
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{
		log:     log,
		running: make(map[uint32]*Event),
	}
}

// Start creates a new running event and returns it.
func (m *Manager) Start(name string) *Event {
	m.idGen++
	e := &Event{
		ID:    m.idGen,
		Name:  name,
		hooks: make(map[string]HookFunc),
	}
	m.running[e.ID] = e
	m.log.Debug("Event started", "id", e.ID, "name", name)
	return e
}

// Get returns the running event with the given id, or nil.
func (m *Manager) Get(id uint32) *Event {
	return m.running[id]
}

// Finish removes a running event.
func (m *Manager) Finish(id uint32) {
	delete(m.running, id)
}

// Run invokes the named hook on the running event with the given id.
func (m *Manager) Run(id uint32, hook string) error {
	e, ok := m.running[id]
	if !ok {
		return fmt.Errorf("event %d is not running", id)
	}
	fn, ok := e.hooks[hook]
	if !ok {
		return fmt.Errorf("event %q has no hook %q", e.Name, hook)
	}
	return fn(id)
}
