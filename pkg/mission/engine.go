package mission

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/hayate891/naev/pkg/gfx"
)

// AcceptFunc decides the outcome of accepting a mission offer. Registered
// per mission name; missions without one simply become active.
type AcceptFunc func(m *Mission) Outcome

// HookFunc is a named callback on a mission instance.
type HookFunc func(m *Mission) error

// Engine is the catalog-driven mission runtime. It materializes offers,
// tracks active missions against the player's capacity, and dispatches
// named hooks.
type Engine struct {
	log       *slog.Logger
	cache     *gfx.Cache
	catalog   []*Data
	rng       *rand.Rand
	maxActive int
	active    []*Mission
	accepts   map[string]AcceptFunc
	hooks     map[string]map[string]HookFunc
}

func NewEngine(catalog []*Data, cache *gfx.Cache, maxActive int, log *slog.Logger) *Engine {
	return &Engine{
		log:       log,
		cache:     cache,
		catalog:   catalog,
		maxActive: maxActive,
		accepts:   make(map[string]AcceptFunc),
		hooks:     make(map[string]map[string]HookFunc),
	}
}

// SetRand overrides the appearance-chance RNG. Tests use a seeded source.
func (e *Engine) SetRand(r *rand.Rand) {
	e.rng = r
}

// RegisterAccept installs the acceptance handler for a mission name.
func (e *Engine) RegisterAccept(missionName string, fn AcceptFunc) {
	e.accepts[missionName] = fn
}

// RegisterHook installs a named hook for a mission name.
func (e *Engine) RegisterHook(missionName, hook string, fn HookFunc) {
	if e.hooks[missionName] == nil {
		e.hooks[missionName] = make(map[string]HookFunc)
	}
	e.hooks[missionName][hook] = fn
}

func (e *Engine) roll() int {
	if e.rng != nil {
		return e.rng.Intn(100)
	}
	return rand.Intn(100)
}

// BarOffers materializes the bar-class mission offers for a landing.
// Each returned instance is freshly created and owned by the caller until
// handed back through Accept or Cleanup.
func (e *Engine) BarOffers(spob, system, faction string) ([]*Mission, error) {
	var offers []*Mission
	for _, d := range e.catalog {
		if d.Avail.Location != AvailabilityBar {
			continue
		}
		if !d.OfferedAt(spob, faction) {
			continue
		}
		if e.isActive(d.Name) {
			continue
		}
		if d.Avail.Chance > 0 && d.Avail.Chance < 100 && e.roll() >= d.Avail.Chance {
			continue
		}
		offers = append(offers, e.materialize(d))
	}
	e.log.Debug("Bar offers generated",
		"spob", spob, "system", system, "count", len(offers))
	return offers, nil
}

func (e *Engine) materialize(d *Data) *Mission {
	return &Mission{
		ID:       uuid.New(),
		Data:     d,
		NPC:      d.NPC,
		Desc:     d.Description,
		Portrait: e.cache.Load(d.Portrait),
	}
}

func (e *Engine) isActive(name string) bool {
	return slices.ContainsFunc(e.active, func(m *Mission) bool {
		return m.Data.Name == name
	})
}

// CanAccept reports whether the player has a free active-mission slot.
func (e *Engine) CanAccept() bool {
	return len(e.active) < e.maxActive
}

// Active returns the currently active missions, in acceptance order.
func (e *Engine) Active() []*Mission {
	return slices.Clone(e.active)
}

// Accept attempts to accept a mission offer. On OutcomeAccepted the engine
// activates its own copy of the instance; the offer passed in remains
// owned by the caller and must still be cleaned up by whoever holds it.
func (e *Engine) Accept(m *Mission) (Outcome, error) {
	if !e.CanAccept() {
		return OutcomeDeclined, fmt.Errorf("no free mission slots (%d active)", len(e.active))
	}

	outcome := OutcomeAccepted
	if fn, ok := e.accepts[m.Data.Name]; ok {
		outcome = fn(m)
	}

	if outcome == OutcomeAccepted {
		// The active entry is its own instance with its own resources;
		// the offer passed in is still cleaned up by its holder.
		e.active = append(e.active, &Mission{
			ID:       uuid.New(),
			Data:     m.Data,
			NPC:      m.NPC,
			Desc:     m.Desc,
			Portrait: m.Portrait.Dup(),
		})
	}
	e.log.Info("Mission offer resolved",
		"mission", m.Data.Name, "outcome", outcome.String())
	return outcome, nil
}

// Finish completes an active mission and releases its resources.
func (e *Engine) Finish(m *Mission) {
	for i, a := range e.active {
		if a.ID == m.ID {
			e.active = slices.Delete(e.active, i, i+1)
			a.Portrait.Release()
			a.Portrait = nil
			e.log.Info("Mission finished", "mission", a.Data.Name)
			return
		}
	}
}

// Cleanup releases the resources owned by a mission instance. Safe to
// call once per instance; the instance must not be used afterwards.
func (e *Engine) Cleanup(m *Mission) {
	if m == nil {
		return
	}
	m.Portrait.Release()
	m.Portrait = nil
	// Drop from the active list too: cleanup of an active mission is an
	// abort.
	for i, a := range e.active {
		if a.ID == m.ID {
			a.Portrait.Release()
			e.active = slices.Delete(e.active, i, i+1)
			break
		}
	}
}

// RunHook invokes the named hook on a mission instance.
func (e *Engine) RunHook(m *Mission, hook string) error {
	hooks := e.hooks[m.Data.Name]
	fn, ok := hooks[hook]
	if !ok {
		return fmt.Errorf("mission %q has no hook %q", m.Data.Name, hook)
	}
	return fn(m)
}
