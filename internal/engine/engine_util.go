package engine

func NewState(teams Teams) State {
	s := State{
		Maps:   NewMapPool(),
		Teams:  teams,
		Picks:  []string{},
		Bans:   []string{},
		Cursor: 0,
	}
	s.Phase = DerivePhase(s.Cursor)
	return s
}

func DerivePhase(cursor int) Phase {
	if cursor >= len(VetoOrder) {
		return PhaseDone
	} else if cursor >= 0 && cursor <= 1 {
		return PhaseBan1
	} else if cursor > 1 && cursor <= 3 {
		return PhasePick1
	} else if cursor > 3 && cursor <= 5 {
		return PhaseBan2
	} else {
		return PhaseDecider
	}
}

// CountStatus returns how many maps in the pool have the given status.
func CountStatus(maps []Map, status MapStatus) int {
	n := 0
	for _, m := range maps {
		if m.Status == status {
			n++
		}
	}
	return n
}
