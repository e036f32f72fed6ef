package engine

import "errors"

var ErrSidesCompleted = errors.New("side selection already completed")
var ErrNoPickedMap = errors.New("no picked map for this step")
var ErrUnknownSide = errors.New("unknown side")

type Side string

const (
	SideT  Side = "T"
	SideCT Side = "CT"
)

func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case SideT:
		return SideT, true
	case SideCT:
		return SideCT, true
	default:
		return "", false
	}
}

func (s Side) DisplayName() string {
	if s == SideT {
		return "Terrorist"
	}
	return "Counter-Terrorist"
}

type PickedMap struct {
	Name     string `json:"name"`
	PickedBy string `json:"picked_by"`
}

type SideChoice struct {
	Side Side   `json:"side"`
	Team string `json:"team"`
	Map  string `json:"map"`
}

type SideState struct {
	Maps    []PickedMap
	Choices []SideChoice // in step order
	Step    int          // 1-based; 0 means nothing to choose
}

func NewSideState(maps []PickedMap) SideState {
	s := SideState{Maps: maps, Choices: []SideChoice{}}
	if len(maps) > 0 {
		s.Step = 1
	}
	return s
}

// Chooser returns who picks a side on the 1-based map index. A team never
// chooses on its own pick, so map 1 goes to map 2's picker and vice versa.
func Chooser(maps []PickedMap, index int) string {
	other := 1
	if index == 2 {
		other = 0
	}
	if other >= len(maps) {
		return ""
	}
	return maps[other].PickedBy
}

func ChooseSide(s SideState, side Side) ([]Event, SideState, error) {
	if s.Step == 0 {
		return nil, s, ErrNoPickedMap
	}
	if SidesDone(s) {
		return nil, s, ErrSidesCompleted
	}
	if s.Step > len(s.Maps) {
		return nil, s, ErrNoPickedMap
	}
	if _, ok := ParseSide(string(side)); !ok {
		return nil, s, ErrUnknownSide
	}

	current := s.Maps[s.Step-1]
	choice := SideChoice{Side: side, Team: Chooser(s.Maps, s.Step), Map: current.Name}

	newState := s
	newState.Choices = append(append([]SideChoice{}, s.Choices...), choice)
	newState.Step++

	events := []Event{{Type: EvtSideChosen, Team: choice.Team, MapID: choice.Map, Side: side}}
	if SidesDone(newState) {
		events = append(events, Event{Type: EvtSidesCompleted})
	}
	return events, newState, nil
}

func ReplaySides(maps []PickedMap, sides []Side) SideState {
	s := NewSideState(maps)
	for _, side := range sides {
		_, next, err := ChooseSide(s, side)
		if err != nil {
			continue
		}
		s = next
	}
	return s
}

func SidesDone(s SideState) bool {
	return s.Step > SideSteps
}

// CurrentMap is the map awaiting a side, if any.
func CurrentMap(s SideState) (PickedMap, bool) {
	if s.Step == 0 || SidesDone(s) || s.Step > len(s.Maps) {
		return PickedMap{}, false
	}
	return s.Maps[s.Step-1], true
}

// Assignments indexes the choices by map name.
func Assignments(s SideState) map[string]SideChoice {
	out := make(map[string]SideChoice, len(s.Choices))
	for _, c := range s.Choices {
		out[c.Map] = c
	}
	return out
}
