// Package npc is the spaceport bar registry: the patrons present while
// the player is landed, what each one fronts for (a mission offer, a
// mission hook, or an event hook), and what happens when the player
// approaches one.
package npc

import (
	"errors"

	"github.com/hayate891/naev/pkg/gfx"
	"github.com/hayate891/naev/pkg/mission"
)

var (
	// ErrNotLanded is returned when a bar operation is attempted while
	// the session is not landed.
	ErrNotLanded = errors.New("not landed")
	// ErrNotFound is returned when no record matches the given identity
	// or index.
	ErrNotFound = errors.New("npc not found")
	// ErrTooManyMissions is returned when a mission offer cannot be
	// approached because all active-mission slots are taken.
	ErrTooManyMissions = errors.New("too many active missions")
	// ErrInvalidKind indicates a record with an uninitialized kind, which
	// is a defect in population code, not a normal condition.
	ErrInvalidKind = errors.New("invalid npc kind")
)

// ID identifies a bar NPC for its lifetime. Ids are positive, assigned
// monotonically on insertion, and never reused within a process; 0 means
// "no NPC".
type ID uint32

// Kind discriminates the closed set of NPC payload variants. Exactly one
// kind is active per record.
type Kind int

const (
	KindNone Kind = iota
	KindGiver
	KindMissionHook
	KindEventHook
)

func (k Kind) String() string {
	switch k {
	case KindGiver:
		return "giver"
	case KindMissionHook:
		return "mission"
	case KindEventHook:
		return "event"
	default:
		return "invalid"
	}
}

// missionHook references an existing mission instance and the hook to run
// when the NPC is approached.
type missionHook struct {
	misn *mission.Mission
	fn   string
}

// eventHook references a running event by id and the hook to run when the
// NPC is approached.
type eventHook struct {
	id uint32
	fn string
}

// Record is a single bar NPC: identity, display fields, presentation
// priority, and exactly one variant payload.
type Record struct {
	id       ID
	kind     Kind
	priority int
	name     string
	portrait *gfx.Texture
	desc     string

	giver *mission.Mission // KindGiver: offered instance, owned by the record
	mhook missionHook      // KindMissionHook
	ehook eventHook        // KindEventHook
}

func (r *Record) ID() ID             { return r.id }
func (r *Record) Kind() Kind         { return r.kind }
func (r *Record) Priority() int      { return r.priority }
func (r *Record) Name() string       { return r.name }
func (r *Record) Description() string { return r.desc }

// Portrait returns the record's portrait handle, borrowed: it stays valid
// only while the record is in the registry.
func (r *Record) Portrait() *gfx.Texture { return r.portrait }
