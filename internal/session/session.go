// Package session carries wizard state between screens in the query string.
// A Context is a value: screens decode one on load and encode a new one for
// every outgoing link.
package session

import (
	"net/url"
	"strings"

	"github.com/DoyleJ11/map-veto/internal/engine"
)

const (
	ParamTeam1      = "team1"
	ParamTeam2      = "team2"
	ParamFirstTeam  = "firstTeam"
	ParamSecondTeam = "secondTeam"
	ParamVeto       = "veto"
	ParamMaps       = "maps"
	ParamPickedBy   = "pickedBy"
	ParamSides      = "sides"
)

type Context struct {
	Teams    engine.Teams
	Veto     []string // clicked map ids, map screen only
	Maps     []string // picked map names in pick order
	PickedBy []string // aligned with Maps
	Sides    []engine.Side
}

// Decode never fails. Missing values decode as empty so screens fall back
// to their default display.
func Decode(q url.Values) Context {
	c := Context{
		Teams: engine.Teams{
			Team1:  q.Get(ParamTeam1),
			Team2:  q.Get(ParamTeam2),
			First:  q.Get(ParamFirstTeam),
			Second: q.Get(ParamSecondTeam),
		},
		Veto:     splitList(q.Get(ParamVeto)),
		Maps:     splitList(q.Get(ParamMaps)),
		PickedBy: splitList(q.Get(ParamPickedBy)),
	}
	for _, s := range splitList(q.Get(ParamSides)) {
		c.Sides = append(c.Sides, engine.Side(s))
	}
	return c
}

func (c Context) Encode() url.Values {
	q := url.Values{}
	setIf(q, ParamTeam1, c.Teams.Team1)
	setIf(q, ParamTeam2, c.Teams.Team2)
	setIf(q, ParamFirstTeam, c.Teams.First)
	setIf(q, ParamSecondTeam, c.Teams.Second)
	setIf(q, ParamVeto, strings.Join(c.Veto, ","))
	setIf(q, ParamMaps, strings.Join(c.Maps, ","))
	setIf(q, ParamPickedBy, strings.Join(c.PickedBy, ","))

	sides := make([]string, len(c.Sides))
	for i, s := range c.Sides {
		sides[i] = string(s)
	}
	setIf(q, ParamSides, strings.Join(sides, ","))
	return q
}

// URL renders the context as a link to path.
func (c Context) URL(path string) string {
	q := c.Encode()
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// HasTeams is true when both team names arrived.
func (c Context) HasTeams() bool {
	return c.Teams.Team1 != "" && c.Teams.Team2 != ""
}

func (c Context) WithTeams(t engine.Teams) Context {
	c.Teams = t
	return c
}

// WithVetoClick returns a copy with one more map click recorded.
func (c Context) WithVetoClick(mapID string) Context {
	c.Veto = append(append([]string{}, c.Veto...), mapID)
	return c
}

func (c Context) WithSide(side engine.Side) Context {
	c.Sides = append(append([]engine.Side{}, c.Sides...), side)
	return c
}

// ForSides builds the hand-off to the side screen from a finished veto.
func ForSides(teams engine.Teams, picked []engine.PickedMap) Context {
	c := Context{Teams: teams}
	for _, p := range picked {
		c.Maps = append(c.Maps, p.Name)
		c.PickedBy = append(c.PickedBy, p.PickedBy)
	}
	return c
}

// PickedMaps zips Maps with PickedBy. Side selection needs both lists, so
// either one missing yields nil. Short PickedBy lists pad with "".
func (c Context) PickedMaps() []engine.PickedMap {
	if len(c.Maps) == 0 || len(c.PickedBy) == 0 {
		return nil
	}
	out := make([]engine.PickedMap, len(c.Maps))
	for i, name := range c.Maps {
		out[i] = engine.PickedMap{Name: name}
		if i < len(c.PickedBy) {
			out[i].PickedBy = c.PickedBy[i]
		}
	}
	return out
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
