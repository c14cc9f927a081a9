package npc

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/hayate891/naev/pkg/dialogue"
	"github.com/hayate891/naev/pkg/gfx"
	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/state"
)

// MissionSystem is the slice of the mission subsystem the bar consumes.
type MissionSystem interface {
	// BarOffers materializes the bar-class offers for the current landing.
	BarOffers(spob, system, faction string) ([]*mission.Mission, error)
	// Accept resolves a mission offer to one of the four outcomes.
	Accept(m *mission.Mission) (mission.Outcome, error)
	// Cleanup releases an instance's resources exactly once.
	Cleanup(m *mission.Mission)
	// RunHook invokes a named hook on a mission instance.
	RunHook(m *mission.Mission, hook string) error
	// CanAccept reports whether a free active-mission slot exists.
	CanAccept() bool
}

// EventRunner is the slice of the event subsystem the bar consumes.
type EventRunner interface {
	Run(id uint32, hook string) error
}

// Registry holds the bar NPCs for one landing. It is created when the
// player lands and torn down (Close) on departure; it is single-threaded
// like the rest of the landing flow, but interaction dispatch can re-enter
// it through mission/event code, so no positional reference may be held
// across such calls.
type Registry struct {
	log      *slog.Logger
	session  *state.Session
	missions MissionSystem
	events   EventRunner
	alerter  dialogue.Alerter
	cache    *gfx.Cache

	records []*Record
	idGen   uint32 // only ever increments; ids are never reused
}

func NewRegistry(session *state.Session, missions MissionSystem, events EventRunner,
	alerter dialogue.Alerter, cache *gfx.Cache, log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		session:  session,
		missions: missions,
		events:   events,
		alerter:  alerter,
		cache:    cache,
	}
}

// Len returns the number of NPCs at the bar.
func (r *Registry) Len() int {
	return len(r.records)
}

// At returns the record at the given presentation index, or nil outside
// [0, Len). The reference is valid only until the next mutating call.
func (r *Registry) At(i int) *Record {
	if i < 0 || i >= len(r.records) {
		return nil
	}
	return r.records[i]
}

// Get returns the record with the given identity, or nil. The reference
// is valid only until the next mutating call.
func (r *Registry) Get(id ID) *Record {
	rec, _ := r.lookup(id)
	return rec
}

func (r *Registry) lookup(id ID) (*Record, int) {
	for i, rec := range r.records {
		if rec.id == id {
			return rec, i
		}
	}
	return nil, -1
}

// add appends a record and assigns it the next identity. The first
// assigned identity is 1; 0 stays reserved for "no NPC".
func (r *Registry) add(rec *Record) (ID, error) {
	if !r.session.Landed {
		return 0, ErrNotLanded
	}
	r.idGen++
	rec.id = ID(r.idGen)
	r.records = append(r.records, rec)
	return rec.id, nil
}

// AddGiver adds a mission-giver NPC snapshotted from an offer. The record
// duplicates the offer's portrait so snapshot and instance are
// independently destructible; the record takes ownership of the instance
// itself.
func (r *Registry) AddGiver(m *mission.Mission) (ID, error) {
	if !r.session.Landed {
		return 0, ErrNotLanded
	}
	return r.add(&Record{
		kind:     KindGiver,
		priority: m.Data.Avail.Priority,
		name:     m.NPC,
		portrait: m.Portrait.Dup(),
		desc:     m.Desc,
		giver:    m,
	})
}

// AddMission adds a hook-backed NPC owned by an existing mission. The
// mission removes it again with RemoveMission when the offer is exhausted.
func (r *Registry) AddMission(m *mission.Mission, hook, name string, priority int,
	portrait, desc string) (ID, error) {
	if !r.session.Landed {
		return 0, ErrNotLanded
	}
	return r.add(&Record{
		kind:     KindMissionHook,
		priority: priority,
		name:     name,
		portrait: r.cache.Load(portrait),
		desc:     desc,
		mhook:    missionHook{misn: m, fn: hook},
	})
}

// AddEvent adds a hook-backed NPC owned by a running event.
func (r *Registry) AddEvent(evt uint32, hook, name string, priority int,
	portrait, desc string) (ID, error) {
	if !r.session.Landed {
		return 0, ErrNotLanded
	}
	return r.add(&Record{
		kind:     KindEventHook,
		priority: priority,
		name:     name,
		portrait: r.cache.Load(portrait),
		desc:     desc,
		ehook:    eventHook{id: evt, fn: hook},
	})
}

// destroy releases everything the record owns: the common display fields
// plus whatever the active variant kind holds. One of the two switch
// sites over Kind.
func (r *Registry) destroy(rec *Record) {
	rec.portrait.Release()
	rec.portrait = nil

	switch rec.kind {
	case KindGiver:
		r.missions.Cleanup(rec.giver)
		rec.giver = nil
	case KindMissionHook, KindEventHook:
		// Hook payloads reference instances owned elsewhere.
	default:
		r.log.Warn("Freeing NPC of invalid kind", "id", rec.id)
	}
}

// erase removes the record at index i, preserving the relative order of
// the remaining records.
func (r *Registry) erase(i int) {
	r.records = slices.Delete(r.records, i, i+1)
}

// RemoveByID destroys and erases the record with the given identity.
func (r *Registry) RemoveByID(id ID) error {
	rec, i := r.lookup(id)
	if rec == nil {
		return ErrNotFound
	}
	r.destroy(rec)
	r.erase(i)
	return nil
}

// RemoveMission removes a mission-hook NPC, refusing unless the record is
// mission-backed and owned by the given mission instance.
func (r *Registry) RemoveMission(id ID, m *mission.Mission) error {
	rec, i := r.lookup(id)
	if rec == nil || rec.kind != KindMissionHook || rec.mhook.misn.ID != m.ID {
		return ErrNotFound
	}
	r.destroy(rec)
	r.erase(i)
	return nil
}

// RemoveEvent removes an event-hook NPC, refusing unless the record is
// event-backed and owned by the given event.
func (r *Registry) RemoveEvent(id ID, evt uint32) error {
	rec, i := r.lookup(id)
	if rec == nil || rec.kind != KindEventHook || rec.ehook.id != evt {
		return ErrNotFound
	}
	r.destroy(rec)
	r.erase(i)
	return nil
}

// SortByPriority orders the bar by ascending priority. The sort is
// stable: records of equal priority keep their insertion order.
func (r *Registry) SortByPriority() {
	sort.SliceStable(r.records, func(i, j int) bool {
		return r.records[i].priority < r.records[j].priority
	})
}

// Clear destroys every record and empties the bar. The identity counter
// is deliberately not reset, so ids never alias across clear/repopulate
// cycles within a session.
func (r *Registry) Clear() {
	for _, rec := range r.records {
		r.destroy(rec)
	}
	r.records = r.records[:0]
}

// Close tears the registry down on departure.
func (r *Registry) Close() {
	r.Clear()
	r.records = nil
}
