package engine

import (
	"errors"
	"slices"
)

var ErrVetoCompleted = errors.New("veto already completed")
var ErrUnknownMap = errors.New("unknown map")
var ErrMapUnavailable = errors.New("map already banned or picked")

type Action string

const (
	ActionBan  Action = "ban"
	ActionPick Action = "pick"
)

// Slot names a team by turn order, not by name.
type Slot string

const (
	SlotFirst  Slot = "first"
	SlotSecond Slot = "second"
)

type Phase string

const (
	PhaseBan1    Phase = "ban1"
	PhasePick1   Phase = "pick1"
	PhaseBan2    Phase = "ban2"
	PhaseDecider Phase = "decider"
	PhaseDone    Phase = "done"
)

type Step struct {
	Action Action `json:"action"`
	Slot   Slot   `json:"slot"`
}

type State struct {
	Phase  Phase
	Cursor int
	Maps   []Map
	Teams  Teams
	Picks  []string // map ids in pick order
	Bans   []string
}

type EventType string

const (
	EvtMapBanned      EventType = "MapBanned"
	EvtMapPicked      EventType = "MapPicked"
	EvtStepAdvanced   EventType = "StepAdvanced"
	EvtVetoCompleted  EventType = "VetoCompleted"
	EvtSideChosen     EventType = "SideChosen"
	EvtSidesCompleted EventType = "SidesCompleted"
)

type Event struct {
	Type  EventType
	Team  string
	MapID string
	Side  Side
}

// Advance applies the current step to mapID. On a failed precondition the
// input state comes back untouched along with the reason.
func Advance(s State, mapID string) ([]Event, State, error) {
	step, done := CurrentStep(s)
	if done {
		return nil, s, ErrVetoCompleted
	}

	idx := findMap(s.Maps, mapID)
	if idx < 0 {
		return nil, s, ErrUnknownMap
	}
	if s.Maps[idx].Status != StatusAvailable {
		return nil, s, ErrMapUnavailable
	}

	team := s.Teams.Resolve(step.Slot)

	// Copy the slices so the caller's state stays as it was
	newState := s
	newState.Maps = slices.Clone(s.Maps)
	newState.Picks = slices.Clone(s.Picks)
	newState.Bans = slices.Clone(s.Bans)

	target := &newState.Maps[idx]
	var events []Event
	switch step.Action {
	case ActionBan:
		target.Status = StatusBanned
		target.BannedBy = team
		newState.Bans = append(newState.Bans, mapID)
		events = append(events, Event{Type: EvtMapBanned, Team: team, MapID: mapID})
	case ActionPick:
		target.Status = StatusPicked
		target.PickedBy = team
		newState.Picks = append(newState.Picks, mapID)
		events = append(events, Event{Type: EvtMapPicked, Team: team, MapID: mapID})
	}

	events = append(events, Event{Type: EvtStepAdvanced})
	newState.Cursor++
	newState.Phase = DerivePhase(newState.Cursor)

	if newState.Cursor == len(VetoOrder) {
		events = append(events, Event{Type: EvtVetoCompleted})
	}
	return events, newState, nil
}

// Replay rebuilds a veto from the clicked map ids. Clicks that fail a
// precondition are skipped, same as clicking a greyed out map.
func Replay(teams Teams, mapIDs []string) State {
	s := NewState(teams)
	for _, id := range mapIDs {
		_, next, err := Advance(s, id)
		if err != nil {
			continue
		}
		s = next
	}
	return s
}

// Applied returns the ids that Replay actually used, dropping the no-ops.
func Applied(s State) []string {
	// Bans and picks interleave, so walk the step table to restore click order.
	out := make([]string, 0, s.Cursor)
	var b, p int
	for _, step := range VetoOrder[:s.Cursor] {
		if step.Action == ActionBan {
			out = append(out, s.Bans[b])
			b++
		} else {
			out = append(out, s.Picks[p])
			p++
		}
	}
	return out
}

func CurrentStep(s State) (Step, bool) {
	if s.Cursor >= len(VetoOrder) {
		return Step{}, true
	}
	return VetoOrder[s.Cursor], false
}

// NextTeam names whoever acts on the current step, or "" once done.
func NextTeam(s State) string {
	step, done := CurrentStep(s)
	if done {
		return ""
	}
	return s.Teams.Resolve(step.Slot)
}

func Completed(s State) bool {
	return s.Cursor >= len(VetoOrder)
}

// PickedMaps lists the picked maps in pick order with who picked them.
func PickedMaps(s State) []PickedMap {
	out := make([]PickedMap, 0, len(s.Picks))
	for _, id := range s.Picks {
		idx := findMap(s.Maps, id)
		if idx < 0 {
			continue
		}
		out = append(out, PickedMap{Name: s.Maps[idx].Name, PickedBy: s.Maps[idx].PickedBy})
	}
	return out
}
