package state

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one play session: where the player currently is
// and whether they are landed. Bar NPCs only exist while Landed is true;
// the registry is rebuilt on every landing and discarded on departure.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Landed    bool      `json:"landed"`
	Spob      string    `json:"spob,omitempty"`    // landed spaceport/planet
	System    string    `json:"system,omitempty"`  // containing star system
	Faction   string    `json:"faction,omitempty"` // controlling faction of the spob
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// Land marks the session as landed at the given spob.
func (s *Session) Land(spob, system, faction string) {
	s.Landed = true
	s.Spob = spob
	s.System = system
	s.Faction = faction
	s.UpdatedAt = time.Now()
}

// Depart clears the landed state. The caller is responsible for tearing
// down anything scoped to the landing (the bar NPC registry in particular).
func (s *Session) Depart() {
	s.Landed = false
	s.Spob = ""
	s.System = ""
	s.Faction = ""
	s.UpdatedAt = time.Now()
}
