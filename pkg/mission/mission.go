// Package mission implements the mission subsystem surface the spaceport
// bar consumes: enumerating offers for a location, accepting an offer,
// cleaning an instance up, and running named mission hooks.
package mission

import (
	"slices"

	"github.com/google/uuid"
	"github.com/hayate891/naev/pkg/gfx"
)

// Availability classes for where a mission is offered.
type Availability string

const (
	AvailabilityNone     Availability = ""
	AvailabilityComputer Availability = "computer"
	AvailabilityBar      Availability = "bar"
)

// Avail is the static availability block of a mission: where it shows up,
// how it sorts, and how likely it is to appear on any given landing.
type Avail struct {
	Location Availability `json:"location"`
	Priority int          `json:"priority"`         // lower presents first
	Chance   int          `json:"chance,omitempty"` // percent; <=0 or >=100 means always
}

// Data is the static definition of a mission, loaded from the catalog.
type Data struct {
	Name        string   `json:"name"`
	NPC         string   `json:"npc"`         // bar patron display name
	Portrait    string   `json:"portrait"`    // image path
	Description string   `json:"description"` // bar patron description
	Avail       Avail    `json:"avail"`
	Spobs       []string `json:"spobs,omitempty"`    // empty = offered anywhere
	Factions    []string `json:"factions,omitempty"` // empty = any faction
}

// OfferedAt reports whether the mission can appear at the given spob.
func (d *Data) OfferedAt(spob, faction string) bool {
	if len(d.Spobs) > 0 && !slices.Contains(d.Spobs, spob) {
		return false
	}
	if len(d.Factions) > 0 && !slices.Contains(d.Factions, faction) {
		return false
	}
	return true
}

// Outcome is the result of accepting a mission offer.
type Outcome int

const (
	// OutcomeDeclined means the player turned the offer down; the offer
	// stays open and the bar NPC stays put.
	OutcomeDeclined Outcome = iota
	// OutcomeAccepted means the mission is now active.
	OutcomeAccepted
	// OutcomeCompleted means the mission ran to completion during
	// acceptance (errand-style missions with no ongoing state).
	OutcomeCompleted
	// OutcomeRejected means acceptance failed terminally; the offer must
	// be cleaned up and withdrawn.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeclined:
		return "declined"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeCompleted:
		return "completed"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Mission is a single materialized instance of a mission Data. Instances
// own their portrait handle; Cleanup releases it exactly once.
type Mission struct {
	ID       uuid.UUID
	Data     *Data
	NPC      string
	Desc     string
	Portrait *gfx.Texture
}
