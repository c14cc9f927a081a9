package npc

import "github.com/hayate891/naev/pkg/mission"

// Approach dispatches a player interaction with the NPC at the given
// presentation index. It returns whether the NPC was consumed (destroyed
// and erased). The other of the two switch sites over Kind.
//
// Mission and event hooks can re-enter the registry before returning
// (registering or removing other NPCs), so dispatch never holds a
// positional reference across those calls; giver consumption re-resolves
// the record by identity afterwards.
func (r *Registry) Approach(i int) (bool, error) {
	rec := r.At(i)
	if rec == nil {
		return false, ErrNotFound
	}

	switch rec.kind {
	case KindGiver:
		return r.approachGiver(rec)

	case KindMissionHook:
		// Removal is the mission's own call, via RemoveMission.
		return false, r.missions.RunHook(rec.mhook.misn, rec.mhook.fn)

	case KindEventHook:
		return false, r.events.Run(rec.ehook.id, rec.ehook.fn)

	default:
		r.log.Warn("Approached NPC of unknown kind", "id", rec.id, "kind", int(rec.kind))
		return false, ErrInvalidKind
	}
}

// approachGiver offers the record's mission to the player. Every outcome
// except an ordinary decline consumes the NPC.
func (r *Registry) approachGiver(rec *Record) (bool, error) {
	if !r.missions.CanAccept() {
		r.alerter.Alert("You have too many active missions.")
		return false, ErrTooManyMissions
	}

	id := rec.id
	outcome, err := r.missions.Accept(rec.giver)
	if err != nil {
		return false, err
	}

	switch outcome {
	case mission.OutcomeAccepted, mission.OutcomeCompleted, mission.OutcomeRejected:
	default:
		// Declined: the offer stays open and the patron stays put.
		return false, nil
	}

	// Accept may have run mission code that mutated the bar; the record
	// must be re-resolved by identity before erasing.
	rec2, idx := r.lookup(id)
	if rec2 == nil {
		return true, nil
	}
	r.destroy(rec2)
	r.erase(idx)
	return true, nil
}
