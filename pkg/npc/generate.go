package npc

// Generate populates the bar with giver NPCs from the mission offers
// available at the current landing. Population is additive: hook-backed
// NPCs registered by missions or events beforehand stay where they are.
// A failed offer query is an empty bar, not an error.
func (r *Registry) Generate() error {
	if !r.session.Landed {
		return ErrNotLanded
	}

	offers, err := r.missions.BarOffers(r.session.Spob, r.session.System, r.session.Faction)
	if err != nil {
		r.log.Warn("Mission offer query failed, bar stays empty",
			"spob", r.session.Spob, "error", err)
		offers = nil
	}

	for _, m := range offers {
		if _, err := r.AddGiver(m); err != nil {
			r.missions.Cleanup(m)
			return err
		}
	}

	r.SortByPriority()
	r.log.Info("Bar populated", "spob", r.session.Spob, "npcs", len(r.records))
	return nil
}
